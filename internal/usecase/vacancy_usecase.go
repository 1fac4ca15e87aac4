package usecase

import (
	"context"
	"errors"
	"time"

	"hr-platform-backend/internal/domain"
	"hr-platform-backend/pkg/apperror"
)

type vacancyUsecase struct {
	vacancyRepo domain.VacancyRepository
}

func NewVacancyUsecase(vacancyRepo domain.VacancyRepository) domain.VacancyUsecase {
	return &vacancyUsecase{vacancyRepo: vacancyRepo}
}

func mapVacancyErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.VacancyNotFound()
	case errors.Is(err, domain.ErrWrongState):
		return apperror.VacancyWrongState()
	}
	return err
}

func (u *vacancyUsecase) Create(ctx context.Context, creator *domain.User, vacancy *domain.Vacancy) (*domain.Vacancy, error) {
	if vacancy.Position == "" {
		return nil, apperror.InvalidParams("position is required")
	}
	if vacancy.Experience < 0 {
		return nil, apperror.InvalidParams("experience cannot be negative")
	}
	vacancy.CreatorID = creator.ID
	if err := u.vacancyRepo.Create(ctx, vacancy); err != nil {
		return nil, err
	}
	// Re-read for the joined department of the creator.
	created, err := u.vacancyRepo.GetByCreator(ctx, vacancy.ID, creator.ID)
	if err != nil {
		return nil, mapVacancyErr(err)
	}
	return created, nil
}

func (u *vacancyUsecase) GetForApplicant(ctx context.Context, id int64) (*domain.Vacancy, error) {
	vacancy, err := u.vacancyRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, mapVacancyErr(err)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) ListForApplicant(ctx context.Context, filters domain.VacancyApplicantFilters, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	return u.vacancyRepo.ListPublished(ctx, filters, page)
}

func (u *vacancyUsecase) GetForManager(ctx context.Context, manager *domain.User, id int64) (*domain.Vacancy, error) {
	vacancy, err := u.vacancyRepo.GetByDepartment(ctx, id, manager.DepartmentID)
	if err != nil {
		return nil, mapVacancyErr(err)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) ListForManager(ctx context.Context, manager *domain.User, filters domain.VacancyManagerFilters, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	return u.vacancyRepo.ListByDepartment(ctx, manager.DepartmentID, filters, page)
}

func (u *vacancyUsecase) Update(ctx context.Context, managerID, id int64, update domain.VacancyUpdate) (*domain.Vacancy, error) {
	if update.Empty() {
		return nil, apperror.InvalidParams("no fields to update")
	}
	if update.Position != nil && *update.Position == "" {
		return nil, apperror.InvalidParams("position cannot be empty")
	}
	if update.Experience != nil && *update.Experience < 0 {
		return nil, apperror.InvalidParams("experience cannot be negative")
	}
	vacancy, err := u.vacancyRepo.UpdateFields(ctx, id, managerID,
		[]domain.State{domain.StateDraft}, update)
	if err != nil {
		return nil, mapVacancyErr(err)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) Publish(ctx context.Context, managerID, id int64) (*domain.Vacancy, error) {
	now := time.Now()
	vacancy, err := u.vacancyRepo.Transition(ctx, id, managerID,
		[]domain.State{domain.StateDraft}, domain.StatePublished, &now)
	if err != nil {
		return nil, mapVacancyErr(err)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) Hide(ctx context.Context, managerID, id int64) (*domain.Vacancy, error) {
	vacancy, err := u.vacancyRepo.Transition(ctx, id, managerID,
		[]domain.State{domain.StatePublished}, domain.StateHidden, nil)
	if err != nil {
		return nil, mapVacancyErr(err)
	}
	return vacancy, nil
}
