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

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}

func (m *MockVacancyRepo) GetPublished(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) GetByDepartment(ctx context.Context, id int64, departmentID *int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) GetByCreator(ctx context.Context, id, creatorID int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) ListPublished(ctx context.Context, filters domain.VacancyApplicantFilters, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	args := m.Called(ctx, filters, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Vacancy), args.Get(1).(int64), args.Error(2)
}

func (m *MockVacancyRepo) ListByDepartment(ctx context.Context, departmentID *int64, filters domain.VacancyManagerFilters, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	args := m.Called(ctx, departmentID, filters, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Vacancy), args.Get(1).(int64), args.Error(2)
}

func (m *MockVacancyRepo) Transition(ctx context.Context, id, creatorID int64, from []domain.State, to domain.State, publishedAt *time.Time) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, creatorID, from, to, publishedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func (m *MockVacancyRepo) UpdateFields(ctx context.Context, id, creatorID int64, from []domain.State, update domain.VacancyUpdate) (*domain.Vacancy, error) {
	args := m.Called(ctx, id, creatorID, from, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func deptID(id int64) *int64 { return &id }

func TestVacancyLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("publish from draft sets timestamp", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		published := &domain.Vacancy{ID: 3, CreatorID: 10, State: domain.StatePublished}
		repo.On("Transition", ctx, int64(3), int64(10),
			[]domain.State{domain.StateDraft}, domain.StatePublished,
			mock.AnythingOfType("*time.Time"),
		).Return(published, nil)

		vacancy, err := uc.Publish(ctx, 10, 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatePublished, vacancy.State)
		repo.AssertExpectations(t)
	})

	t.Run("hide maps wrong state to 4002", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		repo.On("Transition", ctx, int64(3), int64(10), mock.Anything, domain.StateHidden, (*time.Time)(nil)).
			Return(nil, domain.ErrWrongState)

		_, err := uc.Hide(ctx, 10, 3)
		assert.Equal(t, apperror.CodeVacancyWrongState, appErrCode(t, err))
		assert.EqualError(t, err, "Vacancy has not allowed state for this method")
	})

	t.Run("mutation by non-creator maps to 4001", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		repo.On("Transition", ctx, int64(3), int64(11), mock.Anything, domain.StatePublished, mock.Anything).
			Return(nil, domain.ErrNotFound)

		_, err := uc.Publish(ctx, 11, 3)
		assert.Equal(t, apperror.CodeVacancyNotFound, appErrCode(t, err))
		assert.EqualError(t, err, "Vacancy not found")
	})
}

func TestVacancyCreate(t *testing.T) {
	ctx := context.Background()
	creator := &domain.User{ID: 10, Role: domain.RoleManager, DepartmentID: deptID(5)}

	t.Run("forces creator and re-reads joined row", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Vacancy")).Return(nil).Run(func(args mock.Arguments) {
			vacancy := args.Get(1).(*domain.Vacancy)
			assert.Equal(t, int64(10), vacancy.CreatorID)
			vacancy.ID = 77
		})
		created := &domain.Vacancy{ID: 77, CreatorID: 10, State: domain.StateDraft,
			Department: &domain.Department{ID: 5, Name: "Engineering"}}
		repo.On("GetByCreator", ctx, int64(77), int64(10)).Return(created, nil)

		vacancy, err := uc.Create(ctx, creator, &domain.Vacancy{Position: "Go Developer", Experience: 3, Description: "Backend role"})
		assert.NoError(t, err)
		assert.Equal(t, int64(77), vacancy.ID)
		assert.NotNil(t, vacancy.Department)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing position", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		_, err := uc.Create(ctx, creator, &domain.Vacancy{Description: "no position"})
		assert.Equal(t, apperror.CodeInvalidParams, appErrCode(t, err))
		repo.AssertNotCalled(t, "Create")
	})
}

func TestVacancyManagerScope(t *testing.T) {
	ctx := context.Background()

	t.Run("read is scoped by the manager department", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)
		manager := &domain.User{ID: 10, Role: domain.RoleManager, DepartmentID: deptID(5)}

		repo.On("GetByDepartment", ctx, int64(3), deptID(5)).
			Return(&domain.Vacancy{ID: 3, CreatorID: 12}, nil)

		vacancy, err := uc.GetForManager(ctx, manager, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), vacancy.ID)
		repo.AssertExpectations(t)
	})

	t.Run("other department maps to 4001", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)
		manager := &domain.User{ID: 10, Role: domain.RoleManager, DepartmentID: deptID(6)}

		repo.On("GetByDepartment", ctx, int64(3), deptID(6)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetForManager(ctx, manager, 3)
		assert.Equal(t, apperror.CodeVacancyNotFound, appErrCode(t, err))
	})
}

func TestVacancyUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty update", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		_, err := uc.Update(ctx, 10, 3, domain.VacancyUpdate{})
		assert.Equal(t, apperror.CodeInvalidParams, appErrCode(t, err))
		repo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("edits are gated to draft", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(repo)

		position := "Senior Go Developer"
		updated := &domain.Vacancy{ID: 3, Position: position, State: domain.StateDraft}
		repo.On("UpdateFields", ctx, int64(3), int64(10),
			[]domain.State{domain.StateDraft}, mock.AnythingOfType("domain.VacancyUpdate"),
		).Return(updated, nil)

		vacancy, err := uc.Update(ctx, 10, 3, domain.VacancyUpdate{Position: &position})
		assert.NoError(t, err)
		assert.Equal(t, position, vacancy.Position)
		repo.AssertExpectations(t)
	})
}
