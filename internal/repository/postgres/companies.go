package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/pkg/errors"
)

type companyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *sql.DB, logger *zap.Logger) *companyRepository {
	return &companyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *companyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	query := `
		SELECT id, customer_number, customer_name, api_key_hash, is_active, created_at, updated_at
		FROM companies
		WHERE is_active = true
		ORDER BY customer_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query companies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		var company domain.Company
		err := rows.Scan(
			&company.ID,
			&company.CustomerNumber,
			&company.CustomerName,
			&company.APIKeyHash,
			&company.IsActive,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			continue
		}
		companies = append(companies, &company)
	}

	return companies, rows.Err()
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `
		SELECT id, customer_number, customer_name, api_key_hash, is_active, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var company domain.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.CustomerNumber,
		&company.CustomerName,
		&company.APIKeyHash,
		&company.IsActive,
		&company.CreatedAt,
		&company.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "company", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get company by ID", zap.Error(err))
		return nil, err
	}

	return &company, nil
}

func (r *companyRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Company, error) {
	// bcrypt hashes are salted, so there is no direct lookup; verify the
	// key against each active company's stored hash.
	companies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, company := range companies {
		if err := bcrypt.CompareHashAndPassword([]byte(company.APIKeyHash), []byte(apiKey)); err == nil {
			return company, nil
		}
	}

	return nil, &errors.ErrUnauthorized{Message: "invalid API key"}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, customer_number, customer_name, api_key_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	if company.UpdatedAt.IsZero() {
		company.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, query,
		company.ID,
		company.CustomerNumber,
		company.CustomerName,
		company.APIKeyHash,
		company.IsActive,
		company.CreatedAt,
		company.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create company", zap.Error(err))
		return err
	}

	return nil
}
