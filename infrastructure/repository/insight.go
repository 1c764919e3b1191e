package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/tagmage/tagmage-api/infrastructure/database/postgres"
	"github.com/tagmage/tagmage-api/internal/domain"
)

const insightsTable = "insights_daily"

// InsightSums são os contadores brutos agregados de um período; as razões
// derivadas ficam a cargo do caso de uso, que aplica a regra de nulos
type InsightSums struct {
	Spend       float64
	Impressions int
	Clicks      int
	Reach       int
	Leads       int
	Purchases   int
	Revenue     float64
}

type InsightRepository interface {
	SaveOrUpdate(entry *domain.InsightEntry) error
	GetSums(tenantID string, startDate, endDate time.Time) (*InsightSums, error)
	GetByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.InsightEntry, error)
	DeleteOlderThan(tenantID string, days int) (int64, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou substitui a linha inteira identificada pela chave
// composta (tenant, date, level, account, campaign, adset, ad). Nunca há
// atualização parcial: cada sincronização regrava todos os contadores e todas
// as métricas derivadas. Os ids de nível ausentes entram como NULL, e o
// conflito é resolvido pelo índice de expressão com COALESCE, já que o
// Postgres trata NULLs como distintos em constraints de unicidade.
func (r *insightRepository) SaveOrUpdate(entry *domain.InsightEntry) error {
	query := squirrel.StatementBuilder.
		Insert(insightsTable).
		Columns(
			"id", "tenant_id", "date", "level", "account_id",
			"campaign_id", "adset_id", "ad_id",
			"spend", "impressions", "clicks", "reach", "leads", "purchases", "revenue",
			"cpm", "cpc", "ctr", "cpl", "cpa", "roas",
			"objective",
		).
		Values(
			entry.ID,
			entry.TenantID,
			entry.Date.Format(time.DateOnly),
			entry.Level,
			entry.AccountID,
			entry.CampaignID,
			entry.AdsetID,
			entry.AdID,
			entry.Metrics.Spend,
			entry.Metrics.Impressions,
			entry.Metrics.Clicks,
			entry.Metrics.Reach,
			entry.Metrics.Leads,
			entry.Metrics.Purchases,
			entry.Metrics.Revenue,
			entry.Metrics.CPM,
			entry.Metrics.CPC,
			entry.Metrics.CTR,
			entry.Metrics.CPL,
			entry.Metrics.CPA,
			entry.Metrics.ROAS,
			entry.Objective,
		).
		Suffix(`
			ON CONFLICT (tenant_id, date, level, account_id, COALESCE(campaign_id, ''), COALESCE(adset_id, ''), COALESCE(ad_id, '')) DO UPDATE SET
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				reach = EXCLUDED.reach,
				leads = EXCLUDED.leads,
				purchases = EXCLUDED.purchases,
				revenue = EXCLUDED.revenue,
				cpm = EXCLUDED.cpm,
				cpc = EXCLUDED.cpc,
				ctr = EXCLUDED.ctr,
				cpl = EXCLUDED.cpl,
				cpa = EXCLUDED.cpa,
				roas = EXCLUDED.roas,
				objective = EXCLUDED.objective,
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

func (r *insightRepository) GetSums(tenantID string, startDate, endDate time.Time) (*InsightSums, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(spend), 0)",
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(reach), 0)",
			"COALESCE(SUM(leads), 0)",
			"COALESCE(SUM(purchases), 0)",
			"COALESCE(SUM(revenue), 0)",
		).
		From(insightsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sums := &InsightSums{}
	err = r.conn.QueryRow(query, args...).Scan(
		&sums.Spend,
		&sums.Impressions,
		&sums.Clicks,
		&sums.Reach,
		&sums.Leads,
		&sums.Purchases,
		&sums.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar insights: %w", err)
	}

	return sums, nil
}

func (r *insightRepository) GetByDateRange(tenantID string, startDate, endDate time.Time) ([]*domain.InsightEntry, error) {
	query, args, err := squirrel.
		Select(
			"id", "tenant_id", "date", "level", "account_id",
			"campaign_id", "adset_id", "ad_id",
			"spend", "impressions", "clicks", "reach", "leads", "purchases", "revenue",
			"cpm", "cpc", "ctr", "cpl", "cpa", "roas",
			"objective", "created_at", "updated_at",
		).
		From(insightsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
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

	entries := make([]*domain.InsightEntry, 0)
	for rows.Next() {
		entry, err := r.scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// DeleteOlderThan remove linhas mais antigas que o corte de retenção do tenant
func (r *insightRepository) DeleteOlderThan(tenantID string, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(insightsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *insightRepository) scanInsight(rows *sql.Rows) (*domain.InsightEntry, error) {
	entry := &domain.InsightEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.TenantID,
		&entry.Date,
		&entry.Level,
		&entry.AccountID,
		&entry.CampaignID,
		&entry.AdsetID,
		&entry.AdID,
		&entry.Metrics.Spend,
		&entry.Metrics.Impressions,
		&entry.Metrics.Clicks,
		&entry.Metrics.Reach,
		&entry.Metrics.Leads,
		&entry.Metrics.Purchases,
		&entry.Metrics.Revenue,
		&entry.Metrics.CPM,
		&entry.Metrics.CPC,
		&entry.Metrics.CTR,
		&entry.Metrics.CPL,
		&entry.Metrics.CPA,
		&entry.Metrics.ROAS,
		&entry.Objective,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
