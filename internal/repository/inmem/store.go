// Package inmem provides map-backed implementations of the repository
// interfaces for tests and local experimentation. All methods are safe for
// concurrent use.
package inmem

import (
	"sync"

	"edumarket/internal/model"
)

type pair struct {
	accountID string
	courseID  int64
}

type Store struct {
	mu           sync.RWMutex
	accounts     map[string]*model.Account
	courses      map[int64]*model.Course
	institutions map[int64]*model.Institution
	saved        map[pair]struct{}
	registered   map[pair]struct{}
	certificates []model.Certificate

	nextCourseID      int64
	nextInstitutionID int64
	nextCertificateID int64
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]*model.Account),
		courses:      make(map[int64]*model.Course),
		institutions: make(map[int64]*model.Institution),
		saved:        make(map[pair]struct{}),
		registered:   make(map[pair]struct{}),
	}
}

// AddInstitution inserts a fixture institution and returns its assigned id.
func (s *Store) AddInstitution(i model.Institution) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextInstitutionID++
	i.ID = s.nextInstitutionID
	s.institutions[i.ID] = &i
	return i.ID
}

// AddCourse inserts a fixture course and returns its assigned id.
func (s *Store) AddCourse(c model.Course) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCourseID++
	c.ID = s.nextCourseID
	s.courses[c.ID] = &c
	return c.ID
}

// AddCertificate inserts a fixture certificate and returns its assigned id.
func (s *Store) AddCertificate(c model.Certificate) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCertificateID++
	c.ID = s.nextCertificateID
	s.certificates = append(s.certificates, c)
	return c.ID
}
