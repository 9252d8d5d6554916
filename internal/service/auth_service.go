package service

import (
	"context"
	"errors"

	"edumarket/internal/model"
	"edumarket/internal/repository"
	"edumarket/internal/security"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (string, *model.Account, error)
	Login(ctx context.Context, email, password string) (string, *model.Account, error)
}

type authService struct {
	accountRepo repository.AccountRepository
	hasher      *security.PasswordHasher
	tokens      *security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, hasher *security.PasswordHasher, tokens *security.TokenManager) AuthService {
	return &authService{accountRepo: accountRepo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (string, *model.Account, error) {
	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	account := &model.Account{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		// The existence check above is not race-safe on its own; the unique
		// index on email is, so a concurrent duplicate lands here.
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if account == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}
