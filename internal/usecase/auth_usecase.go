package usecase

import (
	"context"

	"hr-platform-backend/internal/domain"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// GetCurrentUser loads the user behind a verified token subject. The role is
// always read from storage, never from token claims.
func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
