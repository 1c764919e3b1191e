package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
)

func testConfig(serverURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			BaseURL: serverURL,
			Version: "v18.0",
			URL:     serverURL,
		},
	}
}

func testFilters() *domain.InsightFilters {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	return &domain.InsightFilters{StartDate: &start, EndDate: &end}
}

func makeRecords(n int, date string) []metadomain.InsightRecord {
	records := make([]metadomain.InsightRecord, n)
	for i := range records {
		records[i] = metadomain.InsightRecord{
			CampaignID: fmt.Sprintf("camp-%d", i),
			DateStart:  date,
			Spend:      "10.0",
		}
	}
	return records
}

func TestFetchInsights_SeguePaginacaoAteOFim(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/act_123/campaigns/insights", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "all_days", r.URL.Query().Get("time_increment"))

		response := ResponseInsights{Data: makeRecords(100, "2024-01-05")}
		if r.URL.Query().Get("after") == "" {
			// Primeira página aponta para a próxima
			response.Paging.Cursors.After = "cursor-2"
		}

		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-token")

	records, err := client.FetchInsights(
		domain.InsightLevelCampaign,
		"act_123",
		testFilters(),
		[]string{"spend", "impressions"},
		"all_days",
	)

	require.NoError(t, err)
	assert.Len(t, records, 200)
	assert.Equal(t, 2, requests)
}

func TestFetchInsights_CursorInfinitoParaNoTeto(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// O servidor sempre devolve um cursor, simulando paginação sem fim
		response := ResponseInsights{Data: makeRecords(6000, "2024-01-05")}
		response.Paging.Cursors.After = fmt.Sprintf("cursor-%d", requests)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-token")

	records, err := client.FetchInsights(
		domain.InsightLevelCampaign,
		"act_123",
		testFilters(),
		[]string{"spend"},
		"all_days",
	)

	// Atingido o teto, o cliente devolve o acumulado sem erro
	require.NoError(t, err)
	assert.Equal(t, 12000, len(records))
	assert.Equal(t, 2, requests)
}

func TestFetchInsights_ErroDaAPIVeraTipado(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(metadomain.ErrorResponse{
			Error: metadomain.ErrorDetails{
				Message:   "Invalid OAuth access token",
				Type:      "OAuthException",
				Code:      190,
				FBTraceID: "AbCdEf",
			},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "expired-token")

	_, err := client.FetchInsights(
		domain.InsightLevelCampaign,
		"act_123",
		testFilters(),
		[]string{"spend"},
		"",
	)

	require.Error(t, err)

	apiErr, ok := err.(*metadomain.APIError)
	require.True(t, ok, "erro deve ser um *metadomain.APIError")
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid OAuth access token", apiErr.Message)
	assert.True(t, apiErr.IsTokenExpired())
}

func TestFetchInsights_NivelContaUsaEndpointDireto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/insights", r.URL.Path)
		json.NewEncoder(w).Encode(ResponseInsights{Data: makeRecords(1, "2024-01-05")})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-token")

	records, err := client.FetchInsights(
		domain.InsightLevelAccount,
		"act_123",
		testFilters(),
		[]string{"spend"},
		"",
	)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListAdAccounts_FallbackParaContasProprias(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/adaccounts", r.URL.Path)
		json.NewEncoder(w).Encode(ResponseAdAccounts{Data: []metadomain.AdAccount{
			{ID: "act_9", AccountID: "9", Name: "Conta Própria", Currency: "BRL"},
		}})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-token")

	accounts, err := client.ListAdAccounts("")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "9", accounts[0].ExternalID())
}

func TestListAdAccounts_PorBusinessManager(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/biz-1/owned_ad_accounts", r.URL.Path)
		json.NewEncoder(w).Encode(ResponseAdAccounts{Data: []metadomain.AdAccount{
			{ID: "act_1", Name: "Loja"},
		}})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), "test-token")

	accounts, err := client.ListAdAccounts("biz-1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	// Sem account_id, o identificador externo cai para o id do nó
	assert.Equal(t, "act_1", accounts[0].ExternalID())
}
