package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data []metadomain.Campaign `json:"data"`
}

// ListCampaigns lista as campanhas de uma conta de anúncios
func (c *MetaClient) ListCampaigns(accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,objective,status,start_time,stop_time")
	params.Add("limit", "1000")

	var response ResponseCampaigns
	if err := c.get(fmt.Sprintf("/%s/campaigns", accountID), params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.Campaign{}, nil
	}

	return response.Data, nil
}
