package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"edumarket/internal/model"
)

// CourseRepository defines the interface for interacting with catalog courses
type CourseRepository interface {
	// List returns the courses matching the filter. An empty filter returns
	// the full catalog. Ordering is store-defined.
	List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error)
	// GetByID returns (nil, nil) when no course matches.
	GetByID(ctx context.Context, id int64) (*model.Course, error)
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseColumns = `id, institution_id, title, price, currency, rating, reviews_count,
       category, image_url, description, full_description, syllabus, dates, mode, duration`

func (r *courseRepo) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`

	var (
		conds []string
		args  []interface{}
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// scanCourse reads one course row, decoding the syllabus and dates jsonb
// columns into string slices.
func scanCourse(scan func(dest ...interface{}) error) (*model.Course, error) {
	var (
		c        model.Course
		syllabus []byte
		dates    []byte
	)
	if err := scan(
		&c.ID,
		&c.InstitutionID,
		&c.Title,
		&c.Price,
		&c.Currency,
		&c.Rating,
		&c.ReviewsCount,
		&c.Category,
		&c.ImageURL,
		&c.Description,
		&c.FullDescription,
		&syllabus,
		&dates,
		&c.Mode,
		&c.Duration,
	); err != nil {
		return nil, err
	}
	if len(syllabus) > 0 {
		if err := json.Unmarshal(syllabus, &c.Syllabus); err != nil {
			return nil, fmt.Errorf("decode syllabus: %w", err)
		}
	}
	if len(dates) > 0 {
		if err := json.Unmarshal(dates, &c.Dates); err != nil {
			return nil, fmt.Errorf("decode dates: %w", err)
		}
	}
	return &c, nil
}
