package domain

import (
	"time"
)

// InsightLevel indica a granularidade de uma linha de insights. O nível fixa
// quais dos campos campaign_id/adset_id/ad_id são significativos; os demais
// ficam nulos.
type InsightLevel string

const (
	InsightLevelAccount  InsightLevel = "account"
	InsightLevelCampaign InsightLevel = "campaign"
	InsightLevelAdset    InsightLevel = "adset"
	InsightLevelAd       InsightLevel = "ad"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailyMetrics reúne os contadores brutos de um dia e as métricas derivadas.
// As derivadas são sempre recomputadas a partir dos contadores da mesma linha;
// denominador zero produz nil, nunca zero ou NaN.
type DailyMetrics struct {
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Reach       int      `json:"reach"`
	Leads       int      `json:"leads"`
	Purchases   int      `json:"purchases"`
	Revenue     float64  `json:"revenue"`
	CPM         *float64 `json:"cpm"`
	CPC         *float64 `json:"cpc"`
	CTR         *float64 `json:"ctr"`
	CPL         *float64 `json:"cpl"`
	CPA         *float64 `json:"cpa"`
	ROAS        *float64 `json:"roas"`
}

// InsightEntry é uma linha da tabela insights_daily. A identidade é a chave
// composta (tenant, date, level, account_id, campaign_id, adset_id, ad_id);
// cada sincronização substitui a linha inteira via upsert.
type InsightEntry struct {
	ID         string       `json:"id"`
	TenantID   string       `json:"tenant_id"`
	Date       time.Time    `json:"date"`
	Level      InsightLevel `json:"level"`
	AccountID  string       `json:"account_id"`
	CampaignID *string      `json:"campaign_id"`
	AdsetID    *string      `json:"adset_id"`
	AdID       *string      `json:"ad_id"`
	Metrics    DailyMetrics `json:"metrics"`
	Objective  *string      `json:"objective"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// AccountSyncResult registra o desfecho de uma conta dentro de um backfill
type AccountSyncResult struct {
	AccountID string `json:"account_id"`
	Records   int    `json:"records"`
	Error     string `json:"error,omitempty"`
}

// BackfillResult é o retorno agregado de uma execução do orquestrador
type BackfillResult struct {
	Processed int                  `json:"processed"`
	Accounts  []*AccountSyncResult `json:"accounts"`
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
}

// InsightSummary agrega os KPIs exibidos no painel para um período
type InsightSummary struct {
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Leads       int      `json:"leads"`
	Purchases   int      `json:"purchases"`
	Revenue     float64  `json:"revenue"`
	CPM         *float64 `json:"cpm"`
	CPC         *float64 `json:"cpc"`
	CTR         *float64 `json:"ctr"`
	CPL         *float64 `json:"cpl"`
	CPA         *float64 `json:"cpa"`
	ROAS        *float64 `json:"roas"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}
