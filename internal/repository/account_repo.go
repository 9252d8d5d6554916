package repository

import (
	"context"
	"database/sql"
	"errors"

	"edumarket/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// AccountRepository defines the interface for interacting with account data
type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	// GetByID returns (nil, nil) when no account matches.
	GetByID(ctx context.Context, id string) (*model.Account, error)
	// GetByEmail returns (nil, nil) when no account matches. The match is
	// case-sensitive, exactly as stored.
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

type accountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, a *model.Account) error {
	query := `INSERT INTO accounts (id, full_name, email, password_hash, role, avatar_url)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, a.ID, a.FullName, a.Email, a.PasswordHash, a.Role, a.AvatarURL).
		Scan(&a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT id, full_name, email, password_hash, role, avatar_url, created_at
              FROM accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT id, full_name, email, password_hash, role, avatar_url, created_at
              FROM accounts WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *accountRepo) scanOne(row *sql.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role, &a.AvatarURL, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
