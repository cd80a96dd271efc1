package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
)

// AuthUseCase defines the contract for the identity/token issuer.
type AuthUseCase interface {
	// Register creates a credential record and returns a signed token.
	Register(ctx context.Context, email, password string) (string, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
}

// ProviderUseCase defines the contract for provider CRUD.
type ProviderUseCase interface {
	List(ctx context.Context) ([]domain.Provider, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Provider, error)

	// Create assigns a fresh id to the record and persists it.
	Create(ctx context.Context, p *domain.Provider) error

	// Replace overwrites the full row identified by p.ID. Returns
	// domain.ErrNotFound when the row no longer exists.
	Replace(ctx context.Context, p *domain.Provider) error

	// Delete removes the row with the given id. Returns
	// domain.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
