package service

import (
	"context"
	"errors"

	"edumarket/internal/model"
	"edumarket/internal/repository"
)

var ErrInstitutionNotFound = errors.New("institution not found")

type InstitutionService interface {
	List(ctx context.Context) ([]model.Institution, error)
	Get(ctx context.Context, id int64) (*model.Institution, error)
}

type institutionService struct {
	institutionRepo repository.InstitutionRepository
}

func NewInstitutionService(institutionRepo repository.InstitutionRepository) InstitutionService {
	return &institutionService{institutionRepo: institutionRepo}
}

func (s *institutionService) List(ctx context.Context) ([]model.Institution, error) {
	return s.institutionRepo.List(ctx)
}

func (s *institutionService) Get(ctx context.Context, id int64) (*model.Institution, error) {
	i, err := s.institutionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrInstitutionNotFound
	}
	return i, nil
}
