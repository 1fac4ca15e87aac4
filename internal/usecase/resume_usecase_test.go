package usecase_test

import (
	"context"
	"testing"
	"time"

	"hr-platform-backend/internal/domain"
	"hr-platform-backend/internal/usecase"
	"hr-platform-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) GetByOwner(ctx context.Context, id, userID int64) (*domain.Resume, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListByOwner(ctx context.Context, userID int64, filters domain.ResumeFilters) ([]domain.Resume, error) {
	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Transition(ctx context.Context, id, userID int64, from []domain.State, to domain.State, publishedAt *time.Time) (*domain.Resume, error) {
	args := m.Called(ctx, id, userID, from, to, publishedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) UpdateContent(ctx context.Context, id, userID int64, from []domain.State, update domain.ResumeUpdate) (*domain.Resume, error) {
	args := m.Called(ctx, id, userID, from, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestResumePublish(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a draft with a timestamp", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		published := &domain.Resume{ID: 7, UserID: 1, State: domain.StatePublished}
		repo.On("Transition", ctx, int64(7), int64(1),
			[]domain.State{domain.StateDraft}, domain.StatePublished,
			mock.AnythingOfType("*time.Time"),
		).Return(published, nil).Run(func(args mock.Arguments) {
			ts := args.Get(5).(*time.Time)
			assert.NotNil(t, ts)
			assert.WithinDuration(t, time.Now(), *ts, time.Second)
		})

		resume, err := uc.Publish(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatePublished, resume.State)
		repo.AssertExpectations(t)
	})

	t.Run("maps wrong state to 3002", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		repo.On("Transition", ctx, int64(7), int64(1), mock.Anything, domain.StatePublished, mock.Anything).
			Return(nil, domain.ErrWrongState)

		_, err := uc.Publish(ctx, 1, 7)
		assert.Equal(t, apperror.CodeResumeWrongState, appErrCode(t, err))
		assert.EqualError(t, err, "Resume has not allowed state for this method")
	})
}

func TestResumeHide(t *testing.T) {
	ctx := context.Background()

	t.Run("hides a published resume and clears the timestamp", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		hidden := &domain.Resume{ID: 7, UserID: 1, State: domain.StateHidden, PublishedAt: nil}
		repo.On("Transition", ctx, int64(7), int64(1),
			[]domain.State{domain.StatePublished}, domain.StateHidden, (*time.Time)(nil),
		).Return(hidden, nil)

		resume, err := uc.Hide(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.StateHidden, resume.State)
		assert.Nil(t, resume.PublishedAt)
		repo.AssertExpectations(t)
	})

	t.Run("maps foreign or missing resume to 3001", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		repo.On("Transition", ctx, int64(7), int64(2), mock.Anything, domain.StateHidden, (*time.Time)(nil)).
			Return(nil, domain.ErrNotFound)

		_, err := uc.Hide(ctx, 2, 7)
		assert.Equal(t, apperror.CodeResumeNotFound, appErrCode(t, err))
		assert.EqualError(t, err, "Resume not found")
	})

	t.Run("maps draft resume to 3002", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		repo.On("Transition", ctx, int64(7), int64(1), mock.Anything, domain.StateHidden, (*time.Time)(nil)).
			Return(nil, domain.ErrWrongState)

		_, err := uc.Hide(ctx, 1, 7)
		assert.Equal(t, apperror.CodeResumeWrongState, appErrCode(t, err))
	})
}

func TestResumeCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("forces owner from caller", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil).Run(func(args mock.Arguments) {
			resume := args.Get(1).(*domain.Resume)
			assert.Equal(t, int64(42), resume.UserID)
		})

		_, err := uc.Create(ctx, 42, &domain.Resume{
			UserID:          999, // must be overridden
			CurrentPosition: "Backend Developer",
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty current position", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		_, err := uc.Create(ctx, 42, &domain.Resume{})
		assert.Equal(t, apperror.CodeInvalidParams, appErrCode(t, err))
		repo.AssertNotCalled(t, "Create")
	})
}

func TestResumeUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("edits are gated to draft", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		bio := "Go developer"
		updated := &domain.Resume{ID: 7, State: domain.StateDraft, Bio: &bio}
		repo.On("UpdateContent", ctx, int64(7), int64(1),
			[]domain.State{domain.StateDraft}, mock.AnythingOfType("domain.ResumeUpdate"),
		).Return(updated, nil)

		resume, err := uc.Update(ctx, 1, 7, domain.ResumeUpdate{Bio: &bio})
		assert.NoError(t, err)
		assert.Equal(t, &bio, resume.Bio)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty update", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		_, err := uc.Update(ctx, 1, 7, domain.ResumeUpdate{})
		assert.Equal(t, apperror.CodeInvalidParams, appErrCode(t, err))
		repo.AssertNotCalled(t, "UpdateContent")
	})

	t.Run("maps published resume to 3002", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		bio := "updated"
		repo.On("UpdateContent", ctx, int64(7), int64(1), mock.Anything, mock.Anything).
			Return(nil, domain.ErrWrongState)

		_, err := uc.Update(ctx, 1, 7, domain.ResumeUpdate{Bio: &bio})
		assert.Equal(t, apperror.CodeResumeWrongState, appErrCode(t, err))
	})
}

func TestResumeGet(t *testing.T) {
	ctx := context.Background()

	t.Run("owner lookup maps miss to 3001", func(t *testing.T) {
		repo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(repo)

		repo.On("GetByOwner", ctx, int64(99), int64(1)).Return(nil, domain.ErrNotFound)

		_, err := uc.Get(ctx, 1, 99)
		assert.Equal(t, apperror.CodeResumeNotFound, appErrCode(t, err))
	})
}
