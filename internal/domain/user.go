package domain

import (
	"context"
	"strings"
	"time"
)

type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleManager   Role = "MANAGER"
)

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Patronymic string    `json:"patronymic"`
	Role       Role      `json:"role"`
	// DepartmentID is set for managers only.
	DepartmentID *int64    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName mirrors the derived expression used for applicant filtering:
// "last first patronymic" joined by single spaces.
func (u *User) FullName() string {
	return strings.Join([]string{u.LastName, u.FirstName, u.Patronymic}, " ")
}

// ApplicantFilters are caller-supplied equality filters for the applicant
// list. FullName matches the derived concatenation, not a stored column.
type ApplicantFilters struct {
	FullName *string
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListApplicants(ctx context.Context, filters ApplicantFilters, page PageQuery) ([]User, int64, error)
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type ApplicantUsecase interface {
	ListApplicants(ctx context.Context, filters ApplicantFilters, page PageQuery) ([]User, int64, error)
}
