package metaclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
)

type Client interface {
	ListBusinesses() ([]metadomain.Business, error)
	ListAdAccounts(businessID string) ([]metadomain.AdAccount, error)
	ListCampaigns(accountID string) ([]metadomain.Campaign, error)
	FetchInsights(level domain.InsightLevel, accountID string, filters *domain.InsightFilters, fields []string, timeIncrement string) ([]metadomain.InsightRecord, error)
}

// MetaClient é um cliente imutável da Graph API, vinculado a um bearer token
// já decifrado. Construção explícita via NewClient, sem estado global de
// credencial.
type MetaClient struct {
	cfg         *config.Config
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config, accessToken string) Client {
	return &MetaClient{
		cfg:         cfg,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// get executa uma requisição autenticada e decodifica o corpo em out.
// Qualquer resposta não-2xx vira um *metadomain.APIError com a mensagem
// original da Graph API; não há retry neste nível.
func (c *MetaClient) get(endpoint string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.accessToken)

	reqURL := c.cfg.Meta.URL + endpoint + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao criar a requisição")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &metadomain.APIError{
			Status:  resp.StatusCode,
			Message: "Meta API error",
		}

		var envelope metadomain.ErrorResponse
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message
			apiErr.Type = envelope.Error.Type
			apiErr.Code = envelope.Error.Code
			apiErr.ErrorSubcode = envelope.Error.ErrorSubcode
			apiErr.FBTraceID = envelope.Error.FBTraceID
		}

		logrus.WithFields(logrus.Fields{
			"endpoint":      endpoint,
			"status":        resp.StatusCode,
			"error_code":    apiErr.Code,
			"fbtrace_id":    apiErr.FBTraceID,
			"token_expired": apiErr.IsTokenExpired(),
		}).Warn("meta: resposta de erro da Graph API")

		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("meta: erro ao decodificar JSON")
		return err
	}

	return nil
}
