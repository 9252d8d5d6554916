package inmem

import (
	"context"

	"edumarket/internal/model"
	"edumarket/internal/repository"
)

type profileRepo struct {
	s *Store
}

func NewProfileRepo(s *Store) repository.ProfileRepository {
	return &profileRepo{s: s}
}

func (r *profileRepo) SavedCourseIDs(_ context.Context, accountID string) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return courseIDsFor(r.s.saved, accountID), nil
}

func (r *profileRepo) RegisteredCourseIDs(_ context.Context, accountID string) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return courseIDsFor(r.s.registered, accountID), nil
}

func courseIDsFor(t map[pair]struct{}, accountID string) []int64 {
	ids := []int64{}
	for p := range t {
		if p.accountID == accountID {
			ids = append(ids, p.courseID)
		}
	}
	return ids
}

func (r *profileRepo) Certificates(_ context.Context, accountID string) ([]model.Certificate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	certs := []model.Certificate{}
	for _, c := range r.s.certificates {
		if c.AccountID == accountID {
			certs = append(certs, c)
		}
	}
	return certs, nil
}

func (r *profileRepo) InsertSaved(_ context.Context, accountID string, courseID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := pair{accountID: accountID, courseID: courseID}
	if _, ok := r.s.saved[p]; ok {
		return false, nil
	}
	r.s.saved[p] = struct{}{}
	return true, nil
}

func (r *profileRepo) DeleteSaved(_ context.Context, accountID string, courseID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := pair{accountID: accountID, courseID: courseID}
	if _, ok := r.s.saved[p]; !ok {
		return false, nil
	}
	delete(r.s.saved, p)
	return true, nil
}

func (r *profileRepo) InsertRegistered(_ context.Context, accountID string, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.registered[pair{accountID: accountID, courseID: courseID}] = struct{}{}
	return nil
}

// RegisteredCount reports how many enrollment rows exist for the account;
// used by tests asserting idempotency.
func (s *Store) RegisteredCount(accountID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for p := range s.registered {
		if p.accountID == accountID {
			n++
		}
	}
	return n
}
