package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tagmage/tagmage-api/infrastructure/database/postgres"
	"github.com/tagmage/tagmage-api/internal/domain"
)

const campaignsTable = "meta_campaigns"

type CampaignRepository interface {
	ListByTenantAndAccount(tenantID, accountID string) ([]*domain.MetaCampaign, error)
	SaveOrUpdate(campaign *domain.MetaCampaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListByTenantAndAccount(tenantID, accountID string) ([]*domain.MetaCampaign, error) {
	query, args, err := squirrel.
		Select(
			"id", "tenant_id", "account_id", "campaign_id", "name",
			"objective", "status", "start_time", "stop_time",
			"created_at", "updated_at",
		).
		From(campaignsTable).
		Where(squirrel.Eq{"tenant_id": tenantID, "account_id": accountID}).
		OrderBy("campaign_id").
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

	campaigns := make([]*domain.MetaCampaign, 0)
	for rows.Next() {
		campaign := &domain.MetaCampaign{}
		err = rows.Scan(
			&campaign.ID,
			&campaign.TenantID,
			&campaign.AccountID,
			&campaign.CampaignID,
			&campaign.Name,
			&campaign.Objective,
			&campaign.Status,
			&campaign.StartTime,
			&campaign.StopTime,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// SaveOrUpdate grava a campanha com upsert em (tenant_id, account_id, campaign_id)
func (r *campaignRepository) SaveOrUpdate(campaign *domain.MetaCampaign) error {
	query := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns(
			"id", "tenant_id", "account_id", "campaign_id", "name",
			"objective", "status", "start_time", "stop_time",
		).
		Values(
			campaign.ID,
			campaign.TenantID,
			campaign.AccountID,
			campaign.CampaignID,
			campaign.Name,
			campaign.Objective,
			campaign.Status,
			campaign.StartTime,
			campaign.StopTime,
		).
		Suffix(`
			ON CONFLICT (tenant_id, account_id, campaign_id) DO UPDATE SET
				name = EXCLUDED.name,
				objective = EXCLUDED.objective,
				status = EXCLUDED.status,
				start_time = EXCLUDED.start_time,
				stop_time = EXCLUDED.stop_time,
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
