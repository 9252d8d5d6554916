package service

import (
	"context"
	"errors"

	"edumarket/internal/model"
	"edumarket/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService defines the interface for catalog course operations
type CourseService interface {
	List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error)
	Get(ctx context.Context, id int64) (*model.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	return s.courseRepo.List(ctx, filter)
}

func (s *courseService) Get(ctx context.Context, id int64) (*model.Course, error) {
	c, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}
