package metaclient

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/internal/domain"
)

// maxInsightRecords é o teto de segurança da paginação: atingido o limite, o
// cliente devolve o que acumulou em vez de falhar
const maxInsightRecords = 10000

type ResponseInsights struct {
	Data   []metadomain.InsightRecord `json:"data"`
	Paging metadomain.Paging          `json:"paging"`
}

// FetchInsights busca as linhas de insights de uma conta no nível pedido,
// seguindo o cursor "after" em um laço sequencial até o fim dos dados ou o
// teto de maxInsightRecords.
func (c *MetaClient) FetchInsights(
	level domain.InsightLevel,
	accountID string,
	filters *domain.InsightFilters,
	fields []string,
	timeIncrement string,
) ([]metadomain.InsightRecord, error) {
	endpoint := fmt.Sprintf("/%s/insights", accountID)
	if level != domain.InsightLevelAccount {
		endpoint = fmt.Sprintf("/%s/%ss/insights", accountID, level)
	}

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", strings.Join(fields, ","))
	params.Add("time_range", timeRange)
	params.Add("limit", "100")
	if timeIncrement != "" {
		params.Add("time_increment", timeIncrement)
	}

	records := make([]metadomain.InsightRecord, 0)
	after := ""

	for {
		if after != "" {
			params.Set("after", after)
		}

		var response ResponseInsights
		if err := c.get(endpoint, params, &response); err != nil {
			return nil, err
		}

		records = append(records, response.Data...)

		after = response.Paging.Cursors.After
		if after == "" {
			break
		}

		if len(records) >= maxInsightRecords {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"level":      level,
				"records":    len(records),
			}).Warn("meta: teto de paginação de insights atingido, interrompendo busca")
			break
		}
	}

	return records, nil
}
