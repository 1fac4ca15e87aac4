package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so reads can run
// inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const resumeColumns = `r.id, r.user_id, r.state, r.bio, r.current_position, r.desired_position, r.experience, r.created_at, r.published_at, r.version,
	COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills`

const resumeFrom = `
	FROM resumes r
	LEFT JOIN resume_skills rs ON rs.resume_id = r.id
	LEFT JOIN skills s ON s.id = rs.skill_id`

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var resume domain.Resume
	err := row.Scan(
		&resume.ID, &resume.UserID, &resume.State, &resume.Bio, &resume.CurrentPosition,
		&resume.DesiredPosition, &resume.Experience, &resume.CreatedAt, &resume.PublishedAt,
		&resume.Version, &resume.Skills,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO resumes (user_id, state, bio, current_position, desired_position, experience, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		resume.State = domain.StateDraft
		resume.CreatedAt = time.Now()
		err := tx.QueryRow(ctx, query,
			resume.UserID, resume.State, resume.Bio, resume.CurrentPosition,
			resume.DesiredPosition, resume.Experience, resume.CreatedAt,
		).Scan(&resume.ID)
		if err != nil {
			return err
		}
		return r.replaceSkills(ctx, tx, resume.ID, resume.Skills)
	})
}

// replaceSkills rewrites the skill set of a resume. Skills are unique by
// name; unknown names are inserted, known ones reused.
func (r *resumeRepo) replaceSkills(ctx context.Context, tx pgx.Tx, resumeID int64, skills []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM resume_skills WHERE resume_id = $1`, resumeID); err != nil {
		return err
	}
	for _, name := range skills {
		var skillID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO skills (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`, name,
		).Scan(&skillID)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO resume_skills (resume_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			resumeID, skillID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *resumeRepo) getByOwner(ctx context.Context, q querier, id, userID int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + resumeFrom + `
	          WHERE r.id = $1 AND r.user_id = $2
	          GROUP BY r.id`
	return scanResume(q.QueryRow(ctx, query, id, userID))
}

func (r *resumeRepo) GetByOwner(ctx context.Context, id, userID int64) (*domain.Resume, error) {
	return r.getByOwner(ctx, r.db, id, userID)
}

// ownerResumeConds puts the owner scope in first; caller filters only narrow
// within it.
func ownerResumeConds(userID int64, filters domain.ResumeFilters) *condBuilder {
	b := &condBuilder{}
	b.eq("r.user_id", userID)
	if filters.State != nil {
		b.eq("r.state", *filters.State)
	}
	if filters.CurrentPosition != nil {
		b.eq("r.current_position", *filters.CurrentPosition)
	}
	if filters.DesiredPosition != nil {
		b.eq("r.desired_position", *filters.DesiredPosition)
	}
	return b
}

func (r *resumeRepo) ListByOwner(ctx context.Context, userID int64, filters domain.ResumeFilters) ([]domain.Resume, error) {
	b := ownerResumeConds(userID, filters)

	query := `SELECT ` + resumeColumns + resumeFrom + b.where() + `
	          GROUP BY r.id ORDER BY r.id DESC`
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

// Transition takes the row lock scoped by id AND owner, verifies the current
// state, then writes the new state and published timestamp together with a
// version bump. Any failure rolls the transaction back with the row
// untouched.
func (r *resumeRepo) Transition(ctx context.Context, id, userID int64, from []domain.State, to domain.State, publishedAt *time.Time) (*domain.Resume, error) {
	var resume *domain.Resume
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		state, err := lockRow(ctx, tx, "resumes", "user_id", id, userID)
		if err != nil {
			return err
		}
		if err := domain.EnsureState(state, from...); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE resumes SET state = $3, published_at = $4, version = version + 1 WHERE id = $1 AND user_id = $2`,
			id, userID, to, publishedAt,
		)
		if err != nil {
			return err
		}
		resume, err = r.getByOwner(ctx, tx, id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resume, nil
}

func (r *resumeRepo) UpdateContent(ctx context.Context, id, userID int64, from []domain.State, update domain.ResumeUpdate) (*domain.Resume, error) {
	var resume *domain.Resume
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		state, err := lockRow(ctx, tx, "resumes", "user_id", id, userID)
		if err != nil {
			return err
		}
		if err := domain.EnsureState(state, from...); err != nil {
			return err
		}

		sets := []string{"version = version + 1"}
		args := []any{id, userID}
		set := func(column string, value any) {
			args = append(args, value)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
		if update.Bio != nil {
			set("bio", *update.Bio)
		}
		if update.CurrentPosition != nil {
			set("current_position", *update.CurrentPosition)
		}
		if update.DesiredPosition != nil {
			set("desired_position", *update.DesiredPosition)
		}
		if update.Experience != nil {
			set("experience", *update.Experience)
		}

		query := `UPDATE resumes SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 AND user_id = $2`
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		if update.Skills != nil {
			if err := r.replaceSkills(ctx, tx, id, *update.Skills); err != nil {
				return err
			}
		}

		resume, err = r.getByOwner(ctx, tx, id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resume, nil
}

// lockRow acquires FOR UPDATE on the row scoped by id and owner column.
// A miss under this scope collapses "missing" and "not yours" into one
// ErrNotFound.
func lockRow(ctx context.Context, tx pgx.Tx, table, ownerColumn string, id, ownerID int64) (domain.State, error) {
	var state domain.State
	query := fmt.Sprintf(`SELECT state FROM %s WHERE id = $1 AND %s = $2 FOR UPDATE`, table, ownerColumn)
	err := tx.QueryRow(ctx, query, id, ownerID).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return state, nil
}
