package metaclient

import (
	"net/url"

	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
)

type ResponseBusinesses struct {
	Data []metadomain.Business `json:"data"`
}

// ListBusinesses lista os business managers acessíveis pela identidade
// autenticada
func (c *MetaClient) ListBusinesses() ([]metadomain.Business, error) {
	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("limit", "100")

	var response ResponseBusinesses
	if err := c.get("/me/businesses", params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.Business{}, nil
	}

	return response.Data, nil
}
