package insighting

import (
	"time"

	"github.com/tagmage/tagmage-api/infrastructure/repository"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/pkg/utils"
)

// Insighter expõe as agregações de KPIs consumidas pelo painel
type Insighter interface {
	GetSummary(tenantID string, startDate, endDate time.Time) (*domain.InsightSummary, error)
	GetDaily(tenantID string, startDate, endDate time.Time) ([]*domain.InsightEntry, error)
}

type Service struct {
	insightRepository repository.InsightRepository
}

func NewService(insightRepository repository.InsightRepository) Insighter {
	return &Service{
		insightRepository: insightRepository,
	}
}

// GetSummary agrega os contadores brutos do período e deriva as razões na
// hora. As derivadas seguem a mesma regra da sincronização: denominador zero
// produz nulo, nunca zero falso; ROAS só existe com receita e gasto positivos.
func (s *Service) GetSummary(tenantID string, startDate, endDate time.Time) (*domain.InsightSummary, error) {
	sums, err := s.insightRepository.GetSums(tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &domain.InsightSummary{
		Spend:       utils.RoundWithTwoDecimalPlace(sums.Spend),
		Impressions: sums.Impressions,
		Clicks:      sums.Clicks,
		Leads:       sums.Leads,
		Purchases:   sums.Purchases,
		Revenue:     utils.RoundWithTwoDecimalPlace(sums.Revenue),
		StartDate:   startDate.Format(time.DateOnly),
		EndDate:     endDate.Format(time.DateOnly),
	}

	if sums.Impressions > 0 {
		summary.CPM = utils.SafeRatio(sums.Spend*1000, float64(sums.Impressions))
		summary.CTR = utils.SafeRatio(float64(sums.Clicks)*100, float64(sums.Impressions))
	}
	if sums.Clicks > 0 {
		summary.CPC = utils.SafeRatio(sums.Spend, float64(sums.Clicks))
	}
	if sums.Leads > 0 {
		summary.CPL = utils.SafeRatio(sums.Spend, float64(sums.Leads))
	}
	if sums.Purchases > 0 {
		summary.CPA = utils.SafeRatio(sums.Spend, float64(sums.Purchases))
	}
	if sums.Revenue > 0 && sums.Spend > 0 {
		summary.ROAS = utils.SafeRatio(sums.Revenue, sums.Spend)
	}

	return summary, nil
}

// GetDaily devolve as linhas diárias persistidas do período, para a série
// temporal do painel
func (s *Service) GetDaily(tenantID string, startDate, endDate time.Time) ([]*domain.InsightEntry, error) {
	return s.insightRepository.GetByDateRange(tenantID, startDate, endDate)
}
