package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/tagmage/tagmage-api/infrastructure/database/postgres"
	"github.com/tagmage/tagmage-api/internal/domain"
)

const (
	providersTable   = "providers p"
	connectionsTable = "provider_connections pc"
)

// ProviderConnectionRepository é somente leitura para o pipeline: a criação
// e renovação das conexões acontecem no callback de OAuth, fora deste serviço
type ProviderConnectionRepository interface {
	GetByTenantAndType(tenantID string, providerType domain.ProviderType) (*domain.ProviderConnection, error)
}

type providerConnectionRepository struct {
	conn *postgres.Connection
}

func NewProviderConnectionRepository(conn *postgres.Connection) ProviderConnectionRepository {
	return &providerConnectionRepository{
		conn: conn,
	}
}

// GetByTenantAndType busca a conexão ativa de um tenant para um tipo de
// provedor. Retorna nil sem erro quando o tenant ainda não conectou o
// provedor.
func (r *providerConnectionRepository) GetByTenantAndType(tenantID string, providerType domain.ProviderType) (*domain.ProviderConnection, error) {
	query, args, err := squirrel.
		Select(
			"pc.id", "pc.tenant_id", "pc.provider_id", "pc.meta_user_id",
			"pc.access_token_encrypted", "pc.refresh_token_encrypted",
			"pc.token_expires_at", "pc.permissions",
			"pc.created_at", "pc.updated_at",
		).
		From(connectionsTable).
		Join(providersTable + " ON p.id = pc.provider_id").
		Where(squirrel.Eq{
			"pc.tenant_id": tenantID,
			"p.type":       providerType,
			"p.status":     domain.ProviderStatusActive,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	connection := &domain.ProviderConnection{}
	var permissions pq.StringArray

	err = r.conn.QueryRow(query, args...).Scan(
		&connection.ID,
		&connection.TenantID,
		&connection.ProviderID,
		&connection.MetaUserID,
		&connection.AccessTokenEncrypted,
		&connection.RefreshTokenEncrypted,
		&connection.TokenExpiresAt,
		&permissions,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	connection.Permissions = permissions

	return connection, nil
}
