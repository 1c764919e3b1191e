package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tagmage/tagmage-api/infrastructure/repository"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/internal/usecases/syncing"
)

// BackfillSyncConfig representa a configuração do agendador de backfill
type BackfillSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// BackfillSyncService agenda e executa o backfill de insights para todos os
// tenants com conexão ativa. Tenants rodam em paralelo limitado por semáforo;
// dentro de um tenant as contas são sequenciais, então nunca há dois writers
// na mesma chave composta.
type BackfillSyncService struct {
	scheduler   *gocron.Scheduler
	config      BackfillSyncConfig
	tenantRepo  repository.TenantRepository
	insightRepo repository.InsightRepository
	syncService syncing.Syncer

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncProcessed   int
}

func NewBackfillSyncService(
	tenantRepo repository.TenantRepository,
	insightRepo repository.InsightRepository,
	syncService syncing.Syncer,
	appConfig *config.Config,
) *BackfillSyncService {
	syncConfig := BackfillSyncConfig{
		CronSchedule:        appConfig.BackfillSync.CronSchedule,
		LookbackDays:        appConfig.BackfillSync.LookbackDays,
		RequestDelaySeconds: appConfig.BackfillSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.BackfillSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.BackfillSync.RetentionDays,
		SyncEnabled:         appConfig.BackfillSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de backfill carregada")

	return &BackfillSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		tenantRepo:  tenantRepo,
		insightRepo: insightRepo,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *BackfillSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Backfill agendado de insights desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backfill de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTenants(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backfill de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backfill de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllTenants executa o backfill para todos os tenants ativos com conexão
func (s *BackfillSyncService) syncAllTenants(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backfill de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando backfill de insights para todos os tenants ativos")

	tenants, err := s.tenantRepo.ListWithActiveConnection(domain.ProviderTypeMeta)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants para o backfill")
		return
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant com conexão ativa para o backfill")
		return
	}

	filters := s.lookbackFilters()
	logrus.WithFields(logrus.Fields{
		"tenants":    len(tenants),
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	}).Info("Período do backfill agendado")

	processed := s.processTenants(ctx, tenants, filters)
	s.lastSyncProcessed = processed

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"tenants":   len(tenants),
		"processed": processed,
	}).Info("Backfill de insights concluído")

	s.lastSyncCompletedAt = time.Now()
}

// lookbackFilters monta o período padrão: do lookback configurado até ontem
func (s *BackfillSyncService) lookbackFilters() *domain.InsightFilters {
	end := time.Now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -s.config.LookbackDays+1)
	return &domain.InsightFilters{StartDate: &start, EndDate: &end}
}

// processTenants roda o backfill por tenant, com concorrência limitada por
// semáforo. Tenants distintos nunca compartilham chaves compostas, então o
// paralelismo aqui não quebra o writer único por chave.
func (s *BackfillSyncService) processTenants(ctx context.Context, tenants []*domain.Tenant, filters *domain.InsightFilters) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var mu sync.Mutex
	totalProcessed := 0

	for _, tenant := range tenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(t *domain.Tenant) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logger := logrus.WithFields(logrus.Fields{
				"tenant_id":   t.ID,
				"tenant_name": t.Name,
			})
			logger.Info("Processando backfill do tenant")

			result, err := s.syncService.RunBackfill(ctx, t.ID, filters)
			if err != nil {
				logger.WithError(err).Error("Erro no backfill do tenant")
				return
			}

			mu.Lock()
			totalProcessed += result.Processed
			mu.Unlock()

			logger.WithField("processed", result.Processed).Info("Backfill do tenant concluído")

			s.applyRetention(t.ID, logger)
		}(tenant)
	}

	wg.Wait()

	return totalProcessed
}

// applyRetention descarta linhas além da janela de retenção do tenant;
// retenção zero mantém tudo
func (s *BackfillSyncService) applyRetention(tenantID string, logger *logrus.Entry) {
	if s.config.RetentionDays <= 0 || s.insightRepo == nil {
		return
	}

	deleted, err := s.insightRepo.DeleteOlderThan(tenantID, s.config.RetentionDays)
	if err != nil {
		logger.WithError(err).Error("Erro ao aplicar a retenção de insights")
		return
	}

	if deleted > 0 {
		logger.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("Retenção de insights aplicada")
	}
}

// TriggerManualSync inicia manualmente um backfill completo
func (s *BackfillSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Backfill de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando backfill manual de insights")
	go s.syncAllTenants(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *BackfillSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_retention_days":    s.config.RetentionDays,
		"sync_running":           s.isRunning(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_processed":    s.lastSyncProcessed,
	}
}

func (s *BackfillSyncService) isRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}
