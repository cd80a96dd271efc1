package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/user/provider-registry/internal/domain"
)

type providerRepository struct {
	db *bun.DB
}

// NewProviderRepository creates the bun-backed provider repository.
func NewProviderRepository(db *bun.DB) domain.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) List(ctx context.Context) ([]domain.Provider, error) {
	providers := []domain.Provider{}
	if err := r.db.NewSelect().Model(&providers).Scan(ctx); err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return providers, nil
}

func (r *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	var p domain.Provider
	err := r.db.NewSelect().Model(&p).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find provider by id: %w", err)
	}
	return &p, nil
}

func (r *providerRepository) Store(ctx context.Context, p *domain.Provider) error {
	if _, err := r.db.NewInsert().Model(p).Exec(ctx); err != nil {
		return fmt.Errorf("store provider: %w", err)
	}
	return nil
}

// Update overwrites the full row by primary key. Zero affected rows
// means the record is gone, not that the commit failed.
func (r *providerRepository) Update(ctx context.Context, p *domain.Provider) error {
	res, err := r.db.NewUpdate().Model(p).WherePK().Exec(ctx)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*domain.Provider)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
