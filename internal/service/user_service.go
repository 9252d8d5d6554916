package service

import (
	"context"
	"errors"

	"edumarket/internal/model"
	"edumarket/internal/repository"
)

var ErrAccountNotFound = errors.New("account not found")

// UserService owns the account-scoped operations: profile aggregation and the
// saved/registered course mutations.
type UserService interface {
	// GetProfile assembles the account projection plus its saved course ids,
	// registered course ids and certificates. If any sub-fetch fails the
	// whole call fails; no partial profile is ever returned.
	GetProfile(ctx context.Context, accountID string) (*model.ProfileView, error)
	// ToggleSaved flips the bookmark state for (accountID, courseID) and
	// returns the resulting state.
	ToggleSaved(ctx context.Context, accountID string, courseID int64) (bool, error)
	// RegisterCourse enrolls the account in the course. Idempotent: repeat
	// calls succeed without creating duplicate rows.
	RegisterCourse(ctx context.Context, accountID string, courseID int64) error
}

type userService struct {
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
}

func NewUserService(accountRepo repository.AccountRepository, profileRepo repository.ProfileRepository) UserService {
	return &userService{accountRepo: accountRepo, profileRepo: profileRepo}
}

func (s *userService) GetProfile(ctx context.Context, accountID string) (*model.ProfileView, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		// A valid token for a since-deleted account lands here.
		return nil, ErrAccountNotFound
	}

	saved, err := s.profileRepo.SavedCourseIDs(ctx, accountID)
	if err != nil {
		return nil, err
	}
	registered, err := s.profileRepo.RegisteredCourseIDs(ctx, accountID)
	if err != nil {
		return nil, err
	}
	certs, err := s.profileRepo.Certificates(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &model.ProfileView{
		Account:           *account,
		SavedCourses:      saved,
		RegisteredCourses: registered,
		Certificates:      certs,
	}, nil
}

func (s *userService) ToggleSaved(ctx context.Context, accountID string, courseID int64) (bool, error) {
	inserted, err := s.profileRepo.InsertSaved(ctx, accountID, courseID)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}
	// The pair already existed, so this toggle removes it.
	if _, err := s.profileRepo.DeleteSaved(ctx, accountID, courseID); err != nil {
		return false, err
	}
	return false, nil
}

func (s *userService) RegisterCourse(ctx context.Context, accountID string, courseID int64) error {
	return s.profileRepo.InsertRegistered(ctx, accountID, courseID)
}
