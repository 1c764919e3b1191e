package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tagmage/tagmage-api/infrastructure/database/postgres"
	"github.com/tagmage/tagmage-api/internal/domain"
)

const tenantsTable = "tenants t"

type TenantRepository interface {
	GetByID(id string) (*domain.Tenant, error)
	ListWithActiveConnection(providerType domain.ProviderType) ([]*domain.Tenant, error)
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(id string) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id", "t.name", "t.plan", "t.status", "t.created_at", "t.updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tenant := &domain.Tenant{}
	err = r.conn.QueryRow(query, args...).Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Plan,
		&tenant.Status,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
	}

	return tenant, nil
}

// ListWithActiveConnection lista os tenants ativos que já conectaram o
// provedor informado; é a entrada do agendador de backfill
func (r *tenantRepository) ListWithActiveConnection(providerType domain.ProviderType) ([]*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("DISTINCT t.id", "t.name", "t.plan", "t.status", "t.created_at", "t.updated_at").
		From(tenantsTable).
		Join("providers p ON p.tenant_id = t.id").
		Join("provider_connections pc ON pc.provider_id = p.id").
		Where(squirrel.Eq{
			"t.status": domain.TenantStatusActive,
			"p.type":   providerType,
			"p.status": domain.ProviderStatusActive,
		}).
		OrderBy("t.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		err = rows.Scan(
			&tenant.ID,
			&tenant.Name,
			&tenant.Plan,
			&tenant.Status,
			&tenant.CreatedAt,
			&tenant.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tenants: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}
