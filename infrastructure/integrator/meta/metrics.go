package meta

import (
	"strconv"

	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/internal/domain"
)

// Tipos de ação reconhecidos na extração de conversões. Qualquer outro
// action_type é ignorado.
const (
	actionTypeLead          = "lead"
	actionTypePixelLead     = "offsite_conversion.fb_pixel_lead"
	actionTypePurchase      = "purchase"
	actionTypePixelPurchase = "offsite_conversion.fb_pixel_purchase"
)

// RequiredInsightFields são os campos pedidos à Graph API para alimentar a
// derivação de métricas
var RequiredInsightFields = []string{
	"spend",
	"impressions",
	"clicks",
	"reach",
	"actions",
	"action_values",
	"objective",
}

// DeriveDailyMetrics converte uma linha bruta de insights nos contadores e
// métricas derivadas de um dia. Função pura, sem I/O.
//
// Contrato de derivação: denominador zero produz nil, nunca zero, NaN ou
// infinito. A receita vem de action_values e independe da contagem de
// purchases extraída de actions: o ROAS exige apenas revenue > 0 e
// spend > 0.
func DeriveDailyMetrics(rec *metadomain.InsightRecord) *domain.DailyMetrics {
	metrics := &domain.DailyMetrics{
		Spend:       parseFloat(rec.Spend),
		Impressions: parseInt(rec.Impressions),
		Clicks:      parseInt(rec.Clicks),
		Reach:       parseInt(rec.Reach),
	}

	for _, action := range rec.Actions {
		switch action.ActionType {
		case actionTypeLead, actionTypePixelLead:
			metrics.Leads += parseInt(action.Value)
		case actionTypePurchase, actionTypePixelPurchase:
			metrics.Purchases += parseInt(action.Value)
		}
	}

	for _, av := range rec.ActionValues {
		if av.ActionType == actionTypePurchase || av.ActionType == actionTypePixelPurchase {
			metrics.Revenue += parseFloat(av.Value)
		}
	}

	if metrics.Impressions > 0 {
		metrics.CPM = ptr(metrics.Spend / float64(metrics.Impressions) * 1000)
		metrics.CTR = ptr(float64(metrics.Clicks) / float64(metrics.Impressions) * 100)
	}

	if metrics.Clicks > 0 {
		metrics.CPC = ptr(metrics.Spend / float64(metrics.Clicks))
	}

	if metrics.Leads > 0 {
		metrics.CPL = ptr(metrics.Spend / float64(metrics.Leads))
	}

	if metrics.Purchases > 0 {
		metrics.CPA = ptr(metrics.Spend / float64(metrics.Purchases))
	}

	if metrics.Revenue > 0 && metrics.Spend > 0 {
		metrics.ROAS = ptr(metrics.Revenue / metrics.Spend)
	}

	return metrics
}

// parseFloat converte uma string decimal da Graph API; vazio ou inválido vira 0
func parseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}

// parseInt converte um contador inteiro da Graph API; vazio ou inválido vira 0
func parseInt(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return parsed
}

func ptr(v float64) *float64 {
	return &v
}
