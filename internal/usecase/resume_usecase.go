package usecase

import (
	"context"
	"errors"
	"time"

	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/apperror"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

// mapResumeErr translates domain sentinels into the resume error family.
// Anything else bubbles up as an internal failure.
func mapResumeErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.ResumeNotFound()
	case errors.Is(err, domain.ErrWrongState):
		return apperror.ResumeWrongState()
	}
	return err
}

func (u *resumeUsecase) Create(ctx context.Context, userID int64, resume *domain.Resume) (*domain.Resume, error) {
	if resume.CurrentPosition == "" {
		return nil, apperror.InvalidParams("current_position is required")
	}
	// Owner always comes from the resolved caller, never from the payload.
	resume.UserID = userID
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) Get(ctx context.Context, userID, id int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}

func (u *resumeUsecase) List(ctx context.Context, userID int64, filters domain.ResumeFilters) ([]domain.Resume, error) {
	return u.resumeRepo.ListByOwner(ctx, userID, filters)
}

func (u *resumeUsecase) Publish(ctx context.Context, userID, id int64) (*domain.Resume, error) {
	now := time.Now()
	resume, err := u.resumeRepo.Transition(ctx, id, userID,
		[]domain.State{domain.StateDraft}, domain.StatePublished, &now)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}

func (u *resumeUsecase) Hide(ctx context.Context, userID, id int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.Transition(ctx, id, userID,
		[]domain.State{domain.StatePublished}, domain.StateHidden, nil)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}

func (u *resumeUsecase) Update(ctx context.Context, userID, id int64, update domain.ResumeUpdate) (*domain.Resume, error) {
	if update.Empty() {
		return nil, apperror.InvalidParams("no fields to update")
	}
	if update.CurrentPosition != nil && *update.CurrentPosition == "" {
		return nil, apperror.InvalidParams("current_position cannot be empty")
	}
	resume, err := u.resumeRepo.UpdateContent(ctx, id, userID,
		[]domain.State{domain.StateDraft}, update)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}
