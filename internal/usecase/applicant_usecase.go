package usecase

import (
	"context"

	"hr-platform-backend/internal/domain"
)

type applicantUsecase struct {
	userRepo domain.UserRepository
}

func NewApplicantUsecase(userRepo domain.UserRepository) domain.ApplicantUsecase {
	return &applicantUsecase{userRepo: userRepo}
}

func (u *applicantUsecase) ListApplicants(ctx context.Context, filters domain.ApplicantFilters, page domain.PageQuery) ([]domain.User, int64, error) {
	return u.userRepo.ListApplicants(ctx, filters, page)
}
