package inmem

import (
	"context"
	"time"

	"edumarket/internal/model"
	"edumarket/internal/repository"
)

type accountRepo struct {
	s *Store
}

func NewAccountRepo(s *Store) repository.AccountRepository {
	return &accountRepo{s: s}
}

func (r *accountRepo) Create(_ context.Context, a *model.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.accounts {
		if existing.Email == a.Email {
			return repository.ErrDuplicate
		}
	}
	a.CreatedAt = time.Now()
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r *accountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if a, ok := r.s.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *accountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// DeleteAccount removes an account row directly, simulating an external
// administrative deletion.
func (s *Store) DeleteAccount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
}
