package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	ErrNotFound = errors.New("not found")
)

// Provider represents a registered supplier record.
type Provider struct {
	bun.BaseModel `bun:"table:providers" json:"-"`

	ID       uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name     string    `bun:"name,notnull" json:"name"`
	Document string    `bun:"document,notnull" json:"document"`
	Active   bool      `bun:"active,notnull" json:"active"`
}

// ProviderRepository defines the interface for provider persistence.
type ProviderRepository interface {
	// List returns all providers. No ordering is guaranteed.
	List(ctx context.Context) ([]Provider, error)

	// FindByID returns the provider with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Provider, error)

	// Store inserts a new provider row.
	Store(ctx context.Context, p *Provider) error

	// Update overwrites the full row identified by the provider's primary
	// key. Returns ErrNotFound when no row was affected.
	Update(ctx context.Context, p *Provider) error

	// Delete removes the row with the given id. Returns ErrNotFound when
	// no row was affected.
	Delete(ctx context.Context, id uuid.UUID) error
}
