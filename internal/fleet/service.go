package fleet

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Name         string
	SKU          string
	BufferBefore time.Duration
	BufferAfter  time.Duration
	Active       bool
}

type UpdateRequest struct {
	Name         *string
	SKU          *string
	BufferBefore *time.Duration
	BufferAfter  *time.Duration
	Active       *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	// ListActive returns the rentable fleet: the resources the availability
	// engine classifies, with their buffer durations.
	ListActive(ctx context.Context) ([]*Resource, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.BufferBefore < 0 || req.BufferAfter < 0 {
		return nil, ErrNegativeBuffer
	}

	res := &Resource{
		Name:         req.Name,
		SKU:          req.SKU,
		BufferBefore: req.BufferBefore,
		BufferAfter:  req.BufferAfter,
		Active:       req.Active,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListActive(ctx context.Context) ([]*Resource, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		res.Name = *req.Name
	}
	if req.SKU != nil {
		res.SKU = *req.SKU
	}
	if req.BufferBefore != nil {
		res.BufferBefore = *req.BufferBefore
	}
	if req.BufferAfter != nil {
		res.BufferAfter = *req.BufferAfter
	}
	if res.BufferBefore < 0 || res.BufferAfter < 0 {
		return nil, ErrNegativeBuffer
	}
	if req.Active != nil {
		res.Active = *req.Active
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Check existence
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
