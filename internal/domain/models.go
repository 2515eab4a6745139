package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a customer company whose shipments appear on the
// dashboard. CustomerNumber is the code carried in shipment business data
// and used by the company filter; APIKeyHash authenticates the company's
// operator sessions.
type Company struct {
	ID             uuid.UUID
	CustomerNumber string
	CustomerName   string
	APIKeyHash     string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SmsEntry is one phone-tracking subscription for a container. The
// dashboard only stores and returns these; it never validates or sends.
type SmsEntry struct {
	ID         uuid.UUID
	Container  string
	MobileList string
	ShipmentID string
	UserID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
