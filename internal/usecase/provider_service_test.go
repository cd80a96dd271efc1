package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/user/provider-registry/internal/domain"
	"github.com/user/provider-registry/internal/domain/mocks"
)

func TestProviderService_Create(t *testing.T) {
	mockRepo := &mocks.MockProviderRepository{}
	svc := NewProviderService(mockRepo)

	p := &domain.Provider{Name: "Acme", Document: "12345678901234", Active: true}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if p.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if len(mockRepo.Providers) != 1 {
		t.Fatalf("expected 1 stored provider, got %d", len(mockRepo.Providers))
	}
	if mockRepo.Providers[0].ID != p.ID {
		t.Error("stored provider id mismatch")
	}
}

func TestProviderService_CreateOverwritesCallerID(t *testing.T) {
	mockRepo := &mocks.MockProviderRepository{}
	svc := NewProviderService(mockRepo)

	callerID := uuid.New()
	p := &domain.Provider{ID: callerID, Name: "Acme", Document: "123", Active: false}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.ID == callerID {
		t.Error("expected caller-supplied id to be replaced")
	}
}

func TestProviderService_Replace(t *testing.T) {
	existing := domain.Provider{ID: uuid.New(), Name: "Old", Document: "111", Active: false}
	mockRepo := &mocks.MockProviderRepository{Providers: []domain.Provider{existing}}
	svc := NewProviderService(mockRepo)

	updated := &domain.Provider{ID: existing.ID, Name: "New", Document: "222", Active: true}
	if err := svc.Replace(context.Background(), updated); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mockRepo.Providers[0].Name != "New" || !mockRepo.Providers[0].Active {
		t.Errorf("expected full overwrite, got %+v", mockRepo.Providers[0])
	}
}

func TestProviderService_ReplaceMissing(t *testing.T) {
	mockRepo := &mocks.MockProviderRepository{}
	svc := NewProviderService(mockRepo)

	err := svc.Replace(context.Background(), &domain.Provider{ID: uuid.New(), Name: "X", Document: "1"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProviderService_Delete(t *testing.T) {
	existing := domain.Provider{ID: uuid.New(), Name: "Acme", Document: "111"}
	mockRepo := &mocks.MockProviderRepository{Providers: []domain.Provider{existing}}
	svc := NewProviderService(mockRepo)

	if err := svc.Delete(context.Background(), existing.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockRepo.Providers) != 0 {
		t.Errorf("expected provider removed, %d remain", len(mockRepo.Providers))
	}

	// Deleting again reports the absence.
	if err := svc.Delete(context.Background(), existing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestProviderService_SaveFailurePassesThrough(t *testing.T) {
	mockRepo := &mocks.MockProviderRepository{StoreErr: errors.New("commit failed")}
	svc := NewProviderService(mockRepo)

	err := svc.Create(context.Background(), &domain.Provider{Name: "Acme", Document: "1"})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("a commit failure must not report as not-found")
	}
}
