package domain

import (
	"context"
	"time"
)

// Vacancy is a job posting owned by its creating manager. Managers of the
// same department can read it; only the creator can mutate it. Applicants
// see it only while PUBLISHED.
type Vacancy struct {
	ID          int64      `json:"id"`
	CreatorID   int64      `json:"creator_id"`
	Position    string     `json:"position"`
	Experience  int        `json:"experience"`
	Description string     `json:"description"`
	State       State      `json:"state"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
	Version     int        `json:"-"`
	// Department is the creator's department, populated by joined reads.
	Department *Department `json:"department,omitempty"`
}

// VacancyUpdate lists the mutable content fields. Nil means leave unchanged.
type VacancyUpdate struct {
	Position    *string
	Experience  *int
	Description *string
}

func (u VacancyUpdate) Empty() bool {
	return u.Position == nil && u.Experience == nil && u.Description == nil
}

// VacancyApplicantFilters apply on top of the mandatory state=PUBLISHED
// predicate for the applicant-facing list.
type VacancyApplicantFilters struct {
	Position     *string
	Experience   *int
	DepartmentID *int64
}

// VacancyManagerFilters apply on top of the mandatory own-department scope.
type VacancyManagerFilters struct {
	State    *State
	Position *string
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *Vacancy) error
	// GetPublished returns the vacancy only while it is PUBLISHED.
	GetPublished(ctx context.Context, id int64) (*Vacancy, error)
	// GetByDepartment scopes the read to the creator's department.
	GetByDepartment(ctx context.Context, id int64, departmentID *int64) (*Vacancy, error)
	// GetByCreator scopes the read to the exact creator.
	GetByCreator(ctx context.Context, id, creatorID int64) (*Vacancy, error)
	ListPublished(ctx context.Context, filters VacancyApplicantFilters, page PageQuery) ([]Vacancy, int64, error)
	ListByDepartment(ctx context.Context, departmentID *int64, filters VacancyManagerFilters, page PageQuery) ([]Vacancy, int64, error)
	Transition(ctx context.Context, id, creatorID int64, from []State, to State, publishedAt *time.Time) (*Vacancy, error)
	UpdateFields(ctx context.Context, id, creatorID int64, from []State, update VacancyUpdate) (*Vacancy, error)
}

type VacancyUsecase interface {
	Create(ctx context.Context, creator *User, vacancy *Vacancy) (*Vacancy, error)
	GetForApplicant(ctx context.Context, id int64) (*Vacancy, error)
	ListForApplicant(ctx context.Context, filters VacancyApplicantFilters, page PageQuery) ([]Vacancy, int64, error)
	GetForManager(ctx context.Context, manager *User, id int64) (*Vacancy, error)
	ListForManager(ctx context.Context, manager *User, filters VacancyManagerFilters, page PageQuery) ([]Vacancy, int64, error)
	Update(ctx context.Context, managerID, id int64, update VacancyUpdate) (*Vacancy, error)
	Publish(ctx context.Context, managerID, id int64) (*Vacancy, error)
	Hide(ctx context.Context, managerID, id int64) (*Vacancy, error)
}
