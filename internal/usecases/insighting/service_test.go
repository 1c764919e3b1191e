package insighting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagmage/tagmage-api/infrastructure/repository"
	"github.com/tagmage/tagmage-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func periodo() (time.Time, time.Time) {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
}

func TestGetSummary_DerivaTodasAsMetricas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightRepository(ctrl)
	service := NewService(mockRepo)

	start, end := periodo()

	mockRepo.EXPECT().
		GetSums("tenant-1", start, end).
		Return(&repository.InsightSums{
			Spend:       100.0,
			Impressions: 10000,
			Clicks:      200,
			Leads:       50,
			Purchases:   10,
			Revenue:     500.0,
		}, nil)

	summary, err := service.GetSummary("tenant-1", start, end)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.Spend)
	assert.Equal(t, 10000, summary.Impressions)
	require.NotNil(t, summary.CPM)
	assert.InDelta(t, 10.0, *summary.CPM, 0.001)
	require.NotNil(t, summary.CPC)
	assert.InDelta(t, 0.5, *summary.CPC, 0.001)
	require.NotNil(t, summary.CTR)
	assert.InDelta(t, 2.0, *summary.CTR, 0.001)
	require.NotNil(t, summary.CPL)
	assert.InDelta(t, 2.0, *summary.CPL, 0.001)
	require.NotNil(t, summary.CPA)
	assert.InDelta(t, 10.0, *summary.CPA, 0.001)
	require.NotNil(t, summary.ROAS)
	assert.InDelta(t, 5.0, *summary.ROAS, 0.001)
	assert.Equal(t, "2024-01-01", summary.StartDate)
	assert.Equal(t, "2024-01-31", summary.EndDate)
}

func TestGetSummary_DenominadorZeroProduzNulo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightRepository(ctrl)
	service := NewService(mockRepo)

	start, end := periodo()

	mockRepo.EXPECT().
		GetSums("tenant-1", start, end).
		Return(&repository.InsightSums{Spend: 42.0}, nil)

	summary, err := service.GetSummary("tenant-1", start, end)
	require.NoError(t, err)

	assert.Nil(t, summary.CPM)
	assert.Nil(t, summary.CPC)
	assert.Nil(t, summary.CTR)
	assert.Nil(t, summary.CPL)
	assert.Nil(t, summary.CPA)
	assert.Nil(t, summary.ROAS)
	assert.Equal(t, 42.0, summary.Spend)
}

func TestGetSummary_ROASIndependeDeCompras(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightRepository(ctrl)
	service := NewService(mockRepo)

	start, end := periodo()

	// Receita atribuída sem compras contadas: ROAS ainda existe
	mockRepo.EXPECT().
		GetSums("tenant-1", start, end).
		Return(&repository.InsightSums{Spend: 100.0, Revenue: 500.0}, nil)

	summary, err := service.GetSummary("tenant-1", start, end)
	require.NoError(t, err)

	assert.Nil(t, summary.CPA)
	require.NotNil(t, summary.ROAS)
	assert.InDelta(t, 5.0, *summary.ROAS, 0.001)
}

func TestGetSummary_PropagaErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightRepository(ctrl)
	service := NewService(mockRepo)

	start, end := periodo()

	mockRepo.EXPECT().
		GetSums("tenant-1", start, end).
		Return(nil, errors.New("connection refused"))

	summary, err := service.GetSummary("tenant-1", start, end)
	assert.Nil(t, summary)
	assert.Error(t, err)
}
