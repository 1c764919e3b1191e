package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,name,account_id,currency,timezone,account_status"

type ResponseAdAccounts struct {
	Data []metadomain.AdAccount `json:"data"`
}

// ListAdAccounts lista as contas de anúncios de um business manager. Com
// businessID vazio, cai para as contas pertencentes à própria identidade
// autenticada (/me/adaccounts).
func (c *MetaClient) ListAdAccounts(businessID string) ([]metadomain.AdAccount, error) {
	endpoint := "/me/adaccounts"
	if businessID != "" {
		endpoint = fmt.Sprintf("/%s/owned_ad_accounts", businessID)
	}

	params := url.Values{}
	params.Add("fields", adAccountFields)

	var response ResponseAdAccounts
	if err := c.get(endpoint, params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.AdAccount{}, nil
	}

	return response.Data, nil
}
