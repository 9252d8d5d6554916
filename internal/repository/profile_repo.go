package repository

import (
	"context"
	"database/sql"

	"edumarket/internal/model"
)

// ProfileRepository covers the account-owned relations: saved courses,
// registered courses and certificates. Every write is a single conditional
// statement so concurrent calls for the same (account, course) pair rely only
// on the store's per-statement atomicity.
type ProfileRepository interface {
	SavedCourseIDs(ctx context.Context, accountID string) ([]int64, error)
	RegisteredCourseIDs(ctx context.Context, accountID string) ([]int64, error)
	Certificates(ctx context.Context, accountID string) ([]model.Certificate, error)
	// InsertSaved reports whether a row was actually inserted (false when the
	// pair already existed).
	InsertSaved(ctx context.Context, accountID string, courseID int64) (bool, error)
	// DeleteSaved reports whether a row was actually deleted.
	DeleteSaved(ctx context.Context, accountID string, courseID int64) (bool, error)
	// InsertRegistered is idempotent: enrolling twice is a no-op, never an error.
	InsertRegistered(ctx context.Context, accountID string, courseID int64) error
}

type profileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) SavedCourseIDs(ctx context.Context, accountID string) ([]int64, error) {
	return r.courseIDs(ctx, `SELECT course_id FROM saved_courses WHERE account_id = $1`, accountID)
}

func (r *profileRepo) RegisteredCourseIDs(ctx context.Context, accountID string) ([]int64, error) {
	return r.courseIDs(ctx, `SELECT course_id FROM registered_courses WHERE account_id = $1`, accountID)
}

func (r *profileRepo) courseIDs(ctx context.Context, query, accountID string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *profileRepo) Certificates(ctx context.Context, accountID string) ([]model.Certificate, error) {
	query := `SELECT id, account_id, course_id, url, date FROM certificates WHERE account_id = $1`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []model.Certificate{}
	for rows.Next() {
		var c model.Certificate
		if err := rows.Scan(&c.ID, &c.AccountID, &c.CourseID, &c.URL, &c.Date); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *profileRepo) InsertSaved(ctx context.Context, accountID string, courseID int64) (bool, error) {
	query := `INSERT INTO saved_courses (account_id, course_id) VALUES ($1, $2)
              ON CONFLICT DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, accountID, courseID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *profileRepo) DeleteSaved(ctx context.Context, accountID string, courseID int64) (bool, error) {
	query := `DELETE FROM saved_courses WHERE account_id = $1 AND course_id = $2`
	res, err := r.db.ExecContext(ctx, query, accountID, courseID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *profileRepo) InsertRegistered(ctx context.Context, accountID string, courseID int64) error {
	query := `INSERT INTO registered_courses (account_id, course_id) VALUES ($1, $2)
              ON CONFLICT DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, accountID, courseID)
	return err
}
