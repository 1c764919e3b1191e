package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagmage/tagmage-api/infrastructure/repository/mocks"
	"github.com/tagmage/tagmage-api/internal/domain"
	syncmocks "github.com/tagmage/tagmage-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func testBackfillService(ctrl *gomock.Controller, maxConcurrent int) (*BackfillSyncService, *mocks.MockTenantRepository, *syncmocks.MockSyncer) {
	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	syncer := syncmocks.NewMockSyncer(ctrl)

	service := &BackfillSyncService{
		config: BackfillSyncConfig{
			CronSchedule:      "0 3 * * *",
			LookbackDays:      90,
			MaxConcurrentJobs: maxConcurrent,
			SyncEnabled:       true,
		},
		tenantRepo:  tenantRepo,
		syncService: syncer,
	}

	return service, tenantRepo, syncer
}

func tenant(id string) *domain.Tenant {
	return &domain.Tenant{ID: id, Name: "Tenant " + id, Status: domain.TenantStatusActive}
}

func TestSyncAllTenants_ProcessaTodosOsTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tenantRepo, syncer := testBackfillService(ctrl, 3)

	tenantRepo.EXPECT().
		ListWithActiveConnection(domain.ProviderTypeMeta).
		Return([]*domain.Tenant{tenant("t1"), tenant("t2")}, nil)

	syncer.EXPECT().
		RunBackfill(gomock.Any(), "t1", gomock.Any()).
		Return(&domain.BackfillResult{Processed: 10}, nil)
	syncer.EXPECT().
		RunBackfill(gomock.Any(), "t2", gomock.Any()).
		Return(&domain.BackfillResult{Processed: 5}, nil)

	service.syncAllTenants(context.Background())

	assert.Equal(t, 15, service.lastSyncProcessed)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncAllTenants_ErroEmUmTenantNaoDerrubaOsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tenantRepo, syncer := testBackfillService(ctrl, 1)

	tenantRepo.EXPECT().
		ListWithActiveConnection(domain.ProviderTypeMeta).
		Return([]*domain.Tenant{tenant("t1"), tenant("t2")}, nil)

	syncer.EXPECT().
		RunBackfill(gomock.Any(), "t1", gomock.Any()).
		Return(nil, errors.New("credencial inválida"))
	syncer.EXPECT().
		RunBackfill(gomock.Any(), "t2", gomock.Any()).
		Return(&domain.BackfillResult{Processed: 7}, nil)

	service.syncAllTenants(context.Background())

	assert.Equal(t, 7, service.lastSyncProcessed)
}

func TestSyncAllTenants_RespeitaLimiteDeConcorrencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tenantRepo, syncer := testBackfillService(ctrl, 2)

	tenants := []*domain.Tenant{tenant("t1"), tenant("t2"), tenant("t3"), tenant("t4")}
	tenantRepo.EXPECT().
		ListWithActiveConnection(domain.ProviderTypeMeta).
		Return(tenants, nil)

	var mu sync.Mutex
	running := 0
	maxObserved := 0

	syncer.EXPECT().
		RunBackfill(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tenantID string, filters *domain.InsightFilters) (*domain.BackfillResult, error) {
			mu.Lock()
			running++
			if running > maxObserved {
				maxObserved = running
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()

			return &domain.BackfillResult{Processed: 1}, nil
		}).
		Times(4)

	service.syncAllTenants(context.Background())

	assert.LessOrEqual(t, maxObserved, 2)
	assert.Equal(t, 4, service.lastSyncProcessed)
}

func TestSyncAllTenants_IgnoraExecucaoSobreposta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := testBackfillService(ctrl, 1)

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	// Nenhuma chamada aos mocks é esperada: a execução sobreposta retorna cedo
	service.syncAllTenants(context.Background())
}

func TestSyncAllTenants_AplicaRetencaoQuandoConfigurada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, tenantRepo, syncer := testBackfillService(ctrl, 1)
	insightRepo := mocks.NewMockInsightRepository(ctrl)
	service.insightRepo = insightRepo
	service.config.RetentionDays = 365

	tenantRepo.EXPECT().
		ListWithActiveConnection(domain.ProviderTypeMeta).
		Return([]*domain.Tenant{tenant("t1")}, nil)

	syncer.EXPECT().
		RunBackfill(gomock.Any(), "t1", gomock.Any()).
		Return(&domain.BackfillResult{Processed: 3}, nil)

	insightRepo.EXPECT().
		DeleteOlderThan("t1", 365).
		Return(int64(12), nil)

	service.syncAllTenants(context.Background())

	assert.Equal(t, 3, service.lastSyncProcessed)
}

func TestLookbackFilters_PeriodoTerminaOntem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := testBackfillService(ctrl, 1)
	service.config.LookbackDays = 90

	filters := service.lookbackFilters()

	require.NotNil(t, filters.StartDate)
	require.NotNil(t, filters.EndDate)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	days := int(filters.EndDate.Sub(*filters.StartDate).Hours()/24) + 1
	assert.Equal(t, 90, days)
}
