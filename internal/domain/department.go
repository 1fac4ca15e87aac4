package domain

import "context"

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DepartmentRepository interface {
	// List returns all departments ordered by name.
	List(ctx context.Context) ([]Department, error)
}

type DepartmentUsecase interface {
	List(ctx context.Context) ([]Department, error)
}
