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
	adAccountsTable = "meta_ad_accounts"
	businessesTable = "meta_businesses"
)

type AdAccountRepository interface {
	ListSelectedByTenant(tenantID string) ([]*domain.MetaAdAccount, error)
	SaveOrUpdate(account *domain.MetaAdAccount) error
	SaveOrUpdateBusiness(business *domain.MetaBusiness) error
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

// ListSelectedByTenant devolve as contas de anúncios que o tenant escolheu
// rastrear; é o escopo de cada execução do backfill
func (r *adAccountRepository) ListSelectedByTenant(tenantID string) ([]*domain.MetaAdAccount, error) {
	query, args, err := squirrel.
		Select(
			"id", "tenant_id", "provider_id", "business_id", "account_id",
			"name", "currency", "timezone", "status", "created_at", "updated_at",
		).
		From(adAccountsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("account_id").
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

	accounts := make([]*domain.MetaAdAccount, 0)
	for rows.Next() {
		account := &domain.MetaAdAccount{}
		err = rows.Scan(
			&account.ID,
			&account.TenantID,
			&account.ProviderID,
			&account.BusinessID,
			&account.AccountID,
			&account.Name,
			&account.Currency,
			&account.Timezone,
			&account.Status,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contas: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// SaveOrUpdate grava uma seleção de conta com upsert em (tenant_id, account_id)
func (r *adAccountRepository) SaveOrUpdate(account *domain.MetaAdAccount) error {
	query := squirrel.StatementBuilder.
		Insert(adAccountsTable).
		Columns(
			"id", "tenant_id", "provider_id", "business_id", "account_id",
			"name", "currency", "timezone", "status",
		).
		Values(
			account.ID,
			account.TenantID,
			account.ProviderID,
			account.BusinessID,
			account.AccountID,
			account.Name,
			account.Currency,
			account.Timezone,
			account.Status,
		).
		Suffix(`
			ON CONFLICT (tenant_id, account_id) DO UPDATE SET
				provider_id = EXCLUDED.provider_id,
				business_id = EXCLUDED.business_id,
				name = EXCLUDED.name,
				currency = EXCLUDED.currency,
				timezone = EXCLUDED.timezone,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adAccountRepository) SaveOrUpdateBusiness(business *domain.MetaBusiness) error {
	query := squirrel.StatementBuilder.
		Insert(businessesTable).
		Columns("id", "tenant_id", "provider_id", "business_id", "name").
		Values(
			business.ID,
			business.TenantID,
			business.ProviderID,
			business.BusinessID,
			business.Name,
		).
		Suffix(`
			ON CONFLICT (tenant_id, business_id) DO UPDATE SET
				name = EXCLUDED.name,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
