package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/pkg/errors"
)

type smsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSmsRepository creates a new SMS-tracking repository
func NewSmsRepository(db *sql.DB, logger *zap.Logger) *smsRepository {
	return &smsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *smsRepository) ListByContainers(ctx context.Context, containers []string) ([]*domain.SmsEntry, error) {
	if len(containers) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, container, mobile_list, shipment_id, user_id, created_at, updated_at
		FROM sms_tracking
		WHERE container = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(containers))
	if err != nil {
		r.logger.Error("Failed to query sms entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.SmsEntry
	for rows.Next() {
		var entry domain.SmsEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Container,
			&entry.MobileList,
			&entry.ShipmentID,
			&entry.UserID,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			continue
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func (r *smsRepository) Create(ctx context.Context, entry *domain.SmsEntry) error {
	query := `
		INSERT INTO sms_tracking (id, container, mobile_list, shipment_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Container,
		entry.MobileList,
		entry.ShipmentID,
		entry.UserID,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create sms entry", zap.Error(err))
		return err
	}

	return nil
}

func (r *smsRepository) Update(ctx context.Context, entry *domain.SmsEntry) error {
	query := `
		UPDATE sms_tracking
		SET mobile_list = $2, shipment_id = $3, updated_at = $4
		WHERE id = $1
	`

	entry.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.MobileList,
		entry.ShipmentID,
		entry.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to update sms entry", zap.Error(err))
		return err
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &errors.ErrNotFound{Resource: "sms entry", ID: entry.ID.String()}
	}

	return nil
}
