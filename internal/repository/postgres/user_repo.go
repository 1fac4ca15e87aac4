package postgres

import (
	"context"
	"errors"
	"fmt"

	"hr-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, first_name, last_name, patronymic, role, department_id, created_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Patronymic,
		&user.Role, &user.DepartmentID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// applicantConds restricts to the APPLICANT role first. The full_name filter
// matches a query-time concatenation of name parts; no index backs it.
func applicantConds(filters domain.ApplicantFilters) *condBuilder {
	b := &condBuilder{}
	b.eq("role", domain.RoleApplicant)
	if filters.FullName != nil {
		b.conds = append(b.conds,
			fmt.Sprintf(`concat(last_name, ' ', first_name, ' ', patronymic) = %s`, b.arg(*filters.FullName)))
	}
	return b
}

// ListApplicants returns APPLICANT users ordered by id descending.
func (r *userRepo) ListApplicants(ctx context.Context, filters domain.ApplicantFilters, page domain.PageQuery) ([]domain.User, int64, error) {
	page = page.Normalized()

	b := applicantConds(filters)

	// Cursor responses carry no total, so the COUNT only runs in offset mode.
	var total int64
	if page.AfterID == nil {
		countWhere, countArgs := b.snapshot()
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+countWhere, countArgs...).Scan(&total); err != nil {
			return nil, 0, err
		}
	}

	tail := ""
	if page.AfterID != nil {
		b.lt("id", *page.AfterID)
		tail = fmt.Sprintf(` ORDER BY id DESC LIMIT %s`, b.arg(page.Limit))
	} else {
		tail = fmt.Sprintf(` ORDER BY id DESC LIMIT %s OFFSET %s`, b.arg(page.Limit), b.arg(page.Offset))
	}

	query := `SELECT ` + userColumns + ` FROM users` + b.where() + tail
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}
