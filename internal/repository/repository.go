package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargoview/opsdash/internal/domain"
)

// CompanyStore provides company records: filter display labels and the
// API-key lookup used by the auth middleware.
type CompanyStore interface {
	List(ctx context.Context) ([]*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
}

// SmsStore persists phone-tracking entries for containers. Storage only;
// the dashboard never validates phone numbers or sends messages.
type SmsStore interface {
	ListByContainers(ctx context.Context, containers []string) ([]*domain.SmsEntry, error)
	Create(ctx context.Context, entry *domain.SmsEntry) error
	Update(ctx context.Context, entry *domain.SmsEntry) error
}

// Repositories aggregates all stores
type Repositories struct {
	Company CompanyStore
	Sms     SmsStore
}
