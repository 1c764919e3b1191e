package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
)

func TestDeriveDailyMetrics_ExemploCompleto(t *testing.T) {
	rec := &metadomain.InsightRecord{
		Spend:       "100.0",
		Impressions: "10000",
		Clicks:      "200",
		Reach:       "8000",
		Actions: []metadomain.Action{
			{ActionType: "lead", Value: "10"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: "500"},
		},
	}

	m := DeriveDailyMetrics(rec)

	assert.Equal(t, 100.0, m.Spend)
	assert.Equal(t, 10000, m.Impressions)
	assert.Equal(t, 200, m.Clicks)
	assert.Equal(t, 8000, m.Reach)
	assert.Equal(t, 10, m.Leads)
	assert.Equal(t, 0, m.Purchases)
	assert.Equal(t, 500.0, m.Revenue)

	require.NotNil(t, m.CPM)
	assert.Equal(t, 10.0, *m.CPM)

	require.NotNil(t, m.CPC)
	assert.Equal(t, 0.5, *m.CPC)

	require.NotNil(t, m.CTR)
	assert.Equal(t, 2.0, *m.CTR)

	require.NotNil(t, m.CPL)
	assert.Equal(t, 10.0, *m.CPL)

	// purchases=0, então CPA fica nulo
	assert.Nil(t, m.CPA)

	// A receita vem de action_values e não depende da contagem de purchases:
	// com revenue=500 e spend=100 o ROAS é 5.0 mesmo com purchases=0
	require.NotNil(t, m.ROAS)
	assert.Equal(t, 5.0, *m.ROAS)
}

func TestDeriveDailyMetrics_DenominadorZeroProduzNulo(t *testing.T) {
	t.Run("impressions zero anula cpm e ctr", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{
			Spend:       "50.0",
			Impressions: "0",
			Clicks:      "10",
		})
		assert.Nil(t, m.CPM)
		assert.Nil(t, m.CTR)
	})

	t.Run("clicks zero anula cpc", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{
			Spend:       "50.0",
			Impressions: "1000",
			Clicks:      "0",
		})
		assert.Nil(t, m.CPC)
	})

	t.Run("sem leads anula cpl", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{
			Spend:       "50.0",
			Impressions: "1000",
			Clicks:      "10",
		})
		assert.Nil(t, m.CPL)
	})

	t.Run("sem purchases anula cpa", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{
			Spend:       "50.0",
			Impressions: "1000",
			Clicks:      "10",
		})
		assert.Nil(t, m.CPA)
	})

	t.Run("spend zero anula roas mesmo com receita", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{
			Spend:       "0",
			Impressions: "1000",
			ActionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "300"},
			},
		})
		assert.Nil(t, m.ROAS)
	})

	t.Run("receita zero anula roas", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{
			Spend:       "50.0",
			Impressions: "1000",
		})
		assert.Nil(t, m.ROAS)
	})

	t.Run("tudo zerado anula todas as derivadas", func(t *testing.T) {
		m := DeriveDailyMetrics(&metadomain.InsightRecord{})
		assert.Nil(t, m.CPM)
		assert.Nil(t, m.CPC)
		assert.Nil(t, m.CTR)
		assert.Nil(t, m.CPL)
		assert.Nil(t, m.CPA)
		assert.Nil(t, m.ROAS)
	})
}

func TestDeriveDailyMetrics_SomaSinonimosDeConversao(t *testing.T) {
	rec := &metadomain.InsightRecord{
		Spend:       "200.0",
		Impressions: "5000",
		Clicks:      "100",
		Actions: []metadomain.Action{
			{ActionType: "lead", Value: "3"},
			{ActionType: "offsite_conversion.fb_pixel_lead", Value: "7"},
			{ActionType: "purchase", Value: "2"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "3"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: "150.5"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "249.5"},
		},
	}

	m := DeriveDailyMetrics(rec)

	assert.Equal(t, 10, m.Leads)
	assert.Equal(t, 5, m.Purchases)
	assert.Equal(t, 400.0, m.Revenue)

	require.NotNil(t, m.CPL)
	assert.Equal(t, 20.0, *m.CPL)

	require.NotNil(t, m.CPA)
	assert.Equal(t, 40.0, *m.CPA)

	require.NotNil(t, m.ROAS)
	assert.Equal(t, 2.0, *m.ROAS)
}

func TestDeriveDailyMetrics_IgnoraTiposDeAcaoForaDaLista(t *testing.T) {
	rec := &metadomain.InsightRecord{
		Spend:       "100.0",
		Impressions: "1000",
		Actions: []metadomain.Action{
			{ActionType: "video_view", Value: "900"},
			{ActionType: "link_click", Value: "50"},
			{ActionType: "post_engagement", Value: "120"},
			{ActionType: "lead", Value: "4"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "video_view", Value: "999"},
		},
	}

	m := DeriveDailyMetrics(rec)

	assert.Equal(t, 4, m.Leads)
	assert.Equal(t, 0, m.Purchases)
	assert.Equal(t, 0.0, m.Revenue)
	assert.Nil(t, m.ROAS)
}

func TestDeriveDailyMetrics_EntradasInvalidasViramZero(t *testing.T) {
	rec := &metadomain.InsightRecord{
		Spend:       "abc",
		Impressions: "",
		Clicks:      "not-a-number",
		Reach:       "12.5",
		Actions: []metadomain.Action{
			{ActionType: "lead", Value: "dez"},
		},
	}

	m := DeriveDailyMetrics(rec)

	assert.Equal(t, 0.0, m.Spend)
	assert.Equal(t, 0, m.Impressions)
	assert.Equal(t, 0, m.Clicks)
	assert.Equal(t, 0, m.Reach)
	assert.Equal(t, 0, m.Leads)
	assert.Nil(t, m.CPM)
	assert.Nil(t, m.CPC)
}
