package service

import (
	"context"

	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/model"
	"github.com/mflath/TImesheets/internal/repository"
)

// ActivityService defines business operations for work activities.
type ActivityService interface {
	Create(ctx context.Context, req dto.ActivityRequest) (dto.ActivityResponse, error)
	List(ctx context.Context) ([]dto.ActivityResponse, error)
	ListActive(ctx context.Context) ([]dto.ActivityResponse, error)
	Rename(ctx context.Context, id uint, req dto.ActivityRequest) error
	Hide(ctx context.Context, id uint) error
	Unhide(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func mapActivity(a model.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{ID: a.ID, Name: a.Name, IsActive: a.IsActive}
}

func (s *activityService) Create(ctx context.Context, req dto.ActivityRequest) (dto.ActivityResponse, error) {
	a := &model.Activity{Name: req.Name, IsActive: true}
	if err := s.repo.Create(ctx, a); err != nil {
		return dto.ActivityResponse{}, err
	}
	return mapActivity(*a), nil
}

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, mapActivity(a))
	}
	return resp, nil
}

func (s *activityService) ListActive(ctx context.Context) ([]dto.ActivityResponse, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, mapActivity(a))
	}
	return resp, nil
}

func (s *activityService) Rename(ctx context.Context, id uint, req dto.ActivityRequest) error {
	return notFoundOr(s.repo.Rename(ctx, id, req.Name))
}

func (s *activityService) Hide(ctx context.Context, id uint) error {
	return notFoundOr(s.repo.SetActive(ctx, id, false))
}

func (s *activityService) Unhide(ctx context.Context, id uint) error {
	return notFoundOr(s.repo.SetActive(ctx, id, true))
}

func (s *activityService) Delete(ctx context.Context, id uint) error {
	return notFoundOr(s.repo.Delete(ctx, id))
}
