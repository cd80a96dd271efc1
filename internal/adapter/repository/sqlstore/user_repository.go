package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/user/provider-registry/internal/domain"
)

type userRepository struct {
	db *bun.DB
}

// NewUserRepository creates the bun-backed user repository.
func NewUserRepository(db *bun.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.NewSelect().Model(&u).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *userRepository) Store(ctx context.Context, u *domain.User) error {
	if _, err := r.db.NewInsert().Model(u).Exec(ctx); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	res, err := r.db.NewUpdate().Model(u).WherePK().Exec(ctx)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
