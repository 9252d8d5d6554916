package inmem

import (
	"context"
	"strings"

	"edumarket/internal/model"
	"edumarket/internal/repository"
)

type courseRepo struct {
	s *Store
}

func NewCourseRepo(s *Store) repository.CourseRepository {
	return &courseRepo{s: s}
}

func (r *courseRepo) List(_ context.Context, filter model.CourseFilter) ([]model.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	courses := []model.Course{}
	for _, c := range r.s.courses {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			continue
		}
		courses = append(courses, *c)
	}
	return courses, nil
}

func (r *courseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if c, ok := r.s.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

type institutionRepo struct {
	s *Store
}

func NewInstitutionRepo(s *Store) repository.InstitutionRepository {
	return &institutionRepo{s: s}
}

func (r *institutionRepo) List(_ context.Context) ([]model.Institution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	institutions := []model.Institution{}
	for _, i := range r.s.institutions {
		institutions = append(institutions, *i)
	}
	return institutions, nil
}

func (r *institutionRepo) GetByID(_ context.Context, id int64) (*model.Institution, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if i, ok := r.s.institutions[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}
