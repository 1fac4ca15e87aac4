package domain

import (
	"context"
	"time"
)

// Resume is a candidate profile owned by exactly one applicant. Nobody else
// can read or mutate it; the manager-facing applicant list exposes user
// records, not resumes.
type Resume struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	State           State      `json:"state"`
	Bio             *string    `json:"bio"`
	CurrentPosition string     `json:"current_position"`
	DesiredPosition *string    `json:"desired_position"`
	Experience      *int       `json:"experience"`
	Skills          []string   `json:"skills"`
	CreatedAt       time.Time  `json:"created_at"`
	PublishedAt     *time.Time `json:"published_at"`
	// Version increments on every write; conflict detection relies on the
	// row lock held during transitions, so the counter is not client-facing.
	Version int `json:"-"`
}

// ResumeUpdate lists the mutable content fields. Nil means leave unchanged.
// Content edits are permitted in DRAFT only.
type ResumeUpdate struct {
	Bio             *string
	CurrentPosition *string
	DesiredPosition *string
	Experience      *int
	Skills          *[]string
}

func (u ResumeUpdate) Empty() bool {
	return u.Bio == nil && u.CurrentPosition == nil && u.DesiredPosition == nil &&
		u.Experience == nil && u.Skills == nil
}

// ResumeFilters are caller-supplied equality filters, intersected with the
// mandatory owner scope.
type ResumeFilters struct {
	State           *State
	CurrentPosition *string
	DesiredPosition *string
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	// GetByOwner scopes the lookup by id AND owner so a foreign or missing
	// resume both come back as ErrNotFound.
	GetByOwner(ctx context.Context, id, userID int64) (*Resume, error)
	ListByOwner(ctx context.Context, userID int64, filters ResumeFilters) ([]Resume, error)
	// Transition locks the owner-scoped row, verifies the current state is in
	// from, then writes state, publishedAt and the version bump atomically.
	Transition(ctx context.Context, id, userID int64, from []State, to State, publishedAt *time.Time) (*Resume, error)
	// UpdateContent is the edit counterpart of Transition: same lock and
	// state gate, but it writes content fields and leaves the state alone.
	UpdateContent(ctx context.Context, id, userID int64, from []State, update ResumeUpdate) (*Resume, error)
}

type ResumeUsecase interface {
	Create(ctx context.Context, userID int64, resume *Resume) (*Resume, error)
	Get(ctx context.Context, userID, id int64) (*Resume, error)
	List(ctx context.Context, userID int64, filters ResumeFilters) ([]Resume, error)
	Publish(ctx context.Context, userID, id int64) (*Resume, error)
	Hide(ctx context.Context, userID, id int64) (*Resume, error)
	Update(ctx context.Context, userID, id int64, update ResumeUpdate) (*Resume, error)
}
