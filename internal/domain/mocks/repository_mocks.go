package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
)

// MockProviderRepository is an in-memory implementation of
// domain.ProviderRepository for testing.
type MockProviderRepository struct {
	mu        sync.Mutex
	Providers []domain.Provider
	ListErr   error
	FindErr   error
	StoreErr  error
	UpdateErr error
	DeleteErr error
}

func (m *MockProviderRepository) List(ctx context.Context) ([]domain.Provider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Provider, len(m.Providers))
	copy(out, m.Providers)
	return out, nil
}

func (m *MockProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, p := range m.Providers {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockProviderRepository) Store(ctx context.Context, p *domain.Provider) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Providers = append(m.Providers, *p)
	return nil
}

func (m *MockProviderRepository) Update(ctx context.Context, p *domain.Provider) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Providers {
		if m.Providers[i].ID == p.ID {
			m.Providers[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Providers {
		if m.Providers[i].ID == id {
			m.Providers = append(m.Providers[:i], m.Providers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockUserRepository is an in-memory implementation of
// domain.UserRepository for testing.
type MockUserRepository struct {
	mu        sync.Mutex
	Users     []domain.User
	FindErr   error
	StoreErr  error
	UpdateErr error
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, u := range m.Users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Store(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Users = append(m.Users, *u)
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Users {
		if m.Users[i].ID == u.ID {
			m.Users[i] = *u
			return nil
		}
	}
	return domain.ErrNotFound
}
