package repository

import (
	"context"
	"database/sql"
	"errors"

	"edumarket/internal/model"
)

// InstitutionRepository defines the interface for interacting with institutions
type InstitutionRepository interface {
	List(ctx context.Context) ([]model.Institution, error)
	// GetByID returns (nil, nil) when no institution matches.
	GetByID(ctx context.Context, id int64) (*model.Institution, error)
}

type institutionRepo struct {
	db *sql.DB
}

func NewInstitutionRepo(db *sql.DB) InstitutionRepository {
	return &institutionRepo{db: db}
}

func (r *institutionRepo) List(ctx context.Context) ([]model.Institution, error) {
	query := `SELECT id, name, logo_url, description, rating FROM institutions`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	institutions := []model.Institution{}
	for rows.Next() {
		var i model.Institution
		if err := rows.Scan(&i.ID, &i.Name, &i.LogoURL, &i.Description, &i.Rating); err != nil {
			return nil, err
		}
		institutions = append(institutions, i)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return institutions, nil
}

func (r *institutionRepo) GetByID(ctx context.Context, id int64) (*model.Institution, error) {
	var i model.Institution
	query := `SELECT id, name, logo_url, description, rating FROM institutions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.Name, &i.LogoURL, &i.Description, &i.Rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}
