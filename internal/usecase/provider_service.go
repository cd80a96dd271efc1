package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
)

type providerService struct {
	repo domain.ProviderRepository
}

// NewProviderService creates the provider CRUD use case.
func NewProviderService(repo domain.ProviderRepository) ProviderUseCase {
	return &providerService{repo: repo}
}

func (s *providerService) List(ctx context.Context) ([]domain.Provider, error) {
	return s.repo.List(ctx)
}

func (s *providerService) Get(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *providerService) Create(ctx context.Context, p *domain.Provider) error {
	p.ID = uuid.New()
	if err := s.repo.Store(ctx, p); err != nil {
		return fmt.Errorf("create provider: %w", err)
	}
	return nil
}

func (s *providerService) Replace(ctx context.Context, p *domain.Provider) error {
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("replace provider: %w", err)
	}
	return nil
}

func (s *providerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}
