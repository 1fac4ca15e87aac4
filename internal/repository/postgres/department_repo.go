package postgres

import (
	"context"

	"hr-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type departmentRepo struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) domain.DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
