package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vacancyColumns = `v.id, v.creator_id, v.position, v.experience, v.description, v.state, v.created_at, v.published_at, v.version, d.id, d.name`

const vacancyFrom = `
	FROM vacancies v
	JOIN users u ON u.id = v.creator_id
	LEFT JOIN departments d ON d.id = u.department_id`

type vacancyRepo struct {
	db *pgxpool.Pool
}

func NewVacancyRepository(db *pgxpool.Pool) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

func scanVacancy(row pgx.Row) (*domain.Vacancy, error) {
	var vacancy domain.Vacancy
	var deptID *int64
	var deptName *string
	err := row.Scan(
		&vacancy.ID, &vacancy.CreatorID, &vacancy.Position, &vacancy.Experience,
		&vacancy.Description, &vacancy.State, &vacancy.CreatedAt, &vacancy.PublishedAt,
		&vacancy.Version, &deptID, &deptName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if deptID != nil && deptName != nil {
		vacancy.Department = &domain.Department{ID: *deptID, Name: *deptName}
	}
	return &vacancy, nil
}

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	query := `INSERT INTO vacancies (creator_id, position, experience, description, state, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	vacancy.State = domain.StateDraft
	vacancy.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		vacancy.CreatorID, vacancy.Position, vacancy.Experience, vacancy.Description,
		vacancy.State, vacancy.CreatedAt,
	).Scan(&vacancy.ID)
}

func (r *vacancyRepo) getScoped(ctx context.Context, q querier, cond string, args ...any) (*domain.Vacancy, error) {
	query := `SELECT ` + vacancyColumns + vacancyFrom + ` WHERE ` + cond
	return scanVacancy(q.QueryRow(ctx, query, args...))
}

func (r *vacancyRepo) GetPublished(ctx context.Context, id int64) (*domain.Vacancy, error) {
	return r.getScoped(ctx, r.db, `v.id = $1 AND v.state = $2`, id, domain.StatePublished)
}

func (r *vacancyRepo) GetByDepartment(ctx context.Context, id int64, departmentID *int64) (*domain.Vacancy, error) {
	b := managerVacancyConds(departmentID, domain.VacancyManagerFilters{})
	b.eq("v.id", id)
	return r.getScoped(ctx, r.db, b.cond(), b.args...)
}

func (r *vacancyRepo) GetByCreator(ctx context.Context, id, creatorID int64) (*domain.Vacancy, error) {
	return r.getScoped(ctx, r.db, `v.id = $1 AND v.creator_id = $2`, id, creatorID)
}

func (r *vacancyRepo) list(ctx context.Context, b *condBuilder, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	page = page.Normalized()

	// Cursor responses carry no total, so the COUNT only runs in offset mode.
	var total int64
	if page.AfterID == nil {
		countWhere, countArgs := b.snapshot()
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+vacancyFrom+countWhere, countArgs...).Scan(&total); err != nil {
			return nil, 0, err
		}
	}

	tail := ""
	if page.AfterID != nil {
		b.lt("v.id", *page.AfterID)
		tail = fmt.Sprintf(` ORDER BY v.id DESC LIMIT %s`, b.arg(page.Limit))
	} else {
		tail = fmt.Sprintf(` ORDER BY v.id DESC LIMIT %s OFFSET %s`, b.arg(page.Limit), b.arg(page.Offset))
	}

	query := `SELECT ` + vacancyColumns + vacancyFrom + b.where() + tail
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vacancies []domain.Vacancy
	for rows.Next() {
		vacancy, err := scanVacancy(rows)
		if err != nil {
			return nil, 0, err
		}
		vacancies = append(vacancies, *vacancy)
	}
	return vacancies, total, rows.Err()
}

// applicantVacancyConds builds the applicant-visible predicate set. The
// PUBLISHED gate goes in first; caller filters only narrow it.
func applicantVacancyConds(filters domain.VacancyApplicantFilters) *condBuilder {
	b := &condBuilder{}
	b.eq("v.state", domain.StatePublished)
	if filters.Position != nil {
		b.eq("v.position", *filters.Position)
	}
	if filters.Experience != nil {
		b.eq("v.experience", *filters.Experience)
	}
	if filters.DepartmentID != nil {
		b.eq("u.department_id", *filters.DepartmentID)
	}
	return b
}

// managerVacancyConds scopes reads by the creator's department. A nil
// department matches creators that also have none, so a manager without a
// department still reads their own vacancies.
func managerVacancyConds(departmentID *int64, filters domain.VacancyManagerFilters) *condBuilder {
	b := &condBuilder{}
	b.eqOrNull("u.department_id", departmentID)
	if filters.State != nil {
		b.eq("v.state", *filters.State)
	}
	if filters.Position != nil {
		b.eq("v.position", *filters.Position)
	}
	return b
}

func (r *vacancyRepo) ListPublished(ctx context.Context, filters domain.VacancyApplicantFilters, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	return r.list(ctx, applicantVacancyConds(filters), page)
}

func (r *vacancyRepo) ListByDepartment(ctx context.Context, departmentID *int64, filters domain.VacancyManagerFilters, page domain.PageQuery) ([]domain.Vacancy, int64, error) {
	return r.list(ctx, managerVacancyConds(departmentID, filters), page)
}

func (r *vacancyRepo) Transition(ctx context.Context, id, creatorID int64, from []domain.State, to domain.State, publishedAt *time.Time) (*domain.Vacancy, error) {
	var vacancy *domain.Vacancy
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		state, err := lockRow(ctx, tx, "vacancies", "creator_id", id, creatorID)
		if err != nil {
			return err
		}
		if err := domain.EnsureState(state, from...); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE vacancies SET state = $3, published_at = $4, version = version + 1 WHERE id = $1 AND creator_id = $2`,
			id, creatorID, to, publishedAt,
		)
		if err != nil {
			return err
		}
		vacancy, err = r.getScoped(ctx, tx, `v.id = $1 AND v.creator_id = $2`, id, creatorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return vacancy, nil
}

func (r *vacancyRepo) UpdateFields(ctx context.Context, id, creatorID int64, from []domain.State, update domain.VacancyUpdate) (*domain.Vacancy, error) {
	var vacancy *domain.Vacancy
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		state, err := lockRow(ctx, tx, "vacancies", "creator_id", id, creatorID)
		if err != nil {
			return err
		}
		if err := domain.EnsureState(state, from...); err != nil {
			return err
		}

		sets := []string{"version = version + 1"}
		args := []any{id, creatorID}
		set := func(column string, value any) {
			args = append(args, value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
		if update.Position != nil {
			set("position", *update.Position)
		}
		if update.Experience != nil {
			set("experience", *update.Experience)
		}
		if update.Description != nil {
			set("description", *update.Description)
		}

		query := `UPDATE vacancies SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 AND creator_id = $2`
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		vacancy, err = r.getScoped(ctx, tx, `v.id = $1 AND v.creator_id = $2`, id, creatorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return vacancy, nil
}
