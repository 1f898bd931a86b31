package tenant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service manages tenant lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new tenant service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a tenant, defaulting the plan to "free" when omitted.
func (s *Service) Create(ctx context.Context, in CreateInput) (Tenant, error) {
	if in.Name == "" || in.Slug == "" {
		return Tenant{}, errors.New("name and slug are required")
	}
	plan := in.Plan
	if plan == "" {
		plan = DefaultPlan
	}

	t := Tenant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Slug:      in.Slug,
		Plan:      plan,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Tenant{}, err
	}
	return t, nil
}

// List returns all tenants.
func (s *Service) List(ctx context.Context) ([]Tenant, error) {
	return s.repo.List(ctx)
}
