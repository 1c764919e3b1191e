package syncing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tagmage/tagmage-api/infrastructure/integrator/meta"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/infrastructure/integrator/meta/metaclient"
	"github.com/tagmage/tagmage-api/infrastructure/repository"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/pkg/crypto"
	"github.com/tagmage/tagmage-api/pkg/utils"
)

// Syncer orquestra o backfill de insights de um tenant
type Syncer interface {
	RunBackfill(ctx context.Context, tenantID string, filters *domain.InsightFilters) (*domain.BackfillResult, error)
}

type Service struct {
	cfg                  *config.Config
	tenantRepository     repository.TenantRepository
	connectionRepository repository.ProviderConnectionRepository
	accountRepository    repository.AdAccountRepository
	insightRepository    repository.InsightRepository

	// newClient resolve a credencial cifrada de uma conexão em um cliente
	// autenticado; substituível em teste
	newClient func(conn *domain.ProviderConnection) (metaclient.Client, error)
}

func NewService(
	cfg *config.Config,
	encryptor *crypto.Encryptor,
	tenantRepository repository.TenantRepository,
	connectionRepository repository.ProviderConnectionRepository,
	accountRepository repository.AdAccountRepository,
	insightRepository repository.InsightRepository,
) *Service {
	return &Service{
		cfg:                  cfg,
		tenantRepository:     tenantRepository,
		connectionRepository: connectionRepository,
		accountRepository:    accountRepository,
		insightRepository:    insightRepository,
		newClient: func(conn *domain.ProviderConnection) (metaclient.Client, error) {
			return metaclient.NewClientFromConnection(cfg, encryptor, conn)
		},
	}
}

// RunBackfill busca e persiste os insights diários de todas as contas
// selecionadas do tenant no período dos filtros. Falha de credencial aborta a
// execução inteira; falha em uma conta é registrada no resultado e a execução
// segue para a próxima. Idempotente: re-executar o mesmo período substitui as
// mesmas linhas via upsert pela chave composta.
func (s *Service) RunBackfill(ctx context.Context, tenantID string, filters *domain.InsightFilters) (*domain.BackfillResult, error) {
	logger := logrus.WithField("tenant_id", tenantID)

	conn, err := s.connectionRepository.GetByTenantAndType(tenantID, domain.ProviderTypeMeta)
	if err != nil {
		return nil, NewSyncError(err, tenantID, "", "falha ao carregar a conexão do provedor")
	}
	if conn == nil {
		return nil, NewSyncError(ErrNoConnection, tenantID, "", "")
	}

	client, err := s.newClient(conn)
	if err != nil {
		logger.WithError(err).Error("backfill abortado: credencial inválida")
		return nil, err
	}

	accounts, err := s.accountRepository.ListSelectedByTenant(tenantID)
	if err != nil {
		return nil, NewSyncError(err, tenantID, "", "falha ao listar as contas selecionadas")
	}
	if len(accounts) == 0 {
		return nil, NewSyncError(ErrNoAccounts, tenantID, "", "")
	}

	result := &domain.BackfillResult{
		Accounts: make([]*domain.AccountSyncResult, 0, len(accounts)),
	}
	if filters != nil && filters.StartDate != nil {
		result.StartDate = filters.StartDate.Format(time.DateOnly)
	}
	if filters != nil && filters.EndDate != nil {
		result.EndDate = filters.EndDate.Format(time.DateOnly)
	}

	logger.WithFields(logrus.Fields{
		"accounts":   len(accounts),
		"start_date": result.StartDate,
		"end_date":   result.EndDate,
	}).Info("iniciando backfill de insights")

	for i, account := range accounts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// intervalo entre contas para não estourar o rate limit da Graph API
		if i > 0 && s.cfg.BackfillSync.RequestDelaySeconds > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(time.Duration(s.cfg.BackfillSync.RequestDelaySeconds) * time.Second):
			}
		}

		accountResult := s.syncAccount(client, tenantID, account, filters)
		result.Accounts = append(result.Accounts, accountResult)
		result.Processed += accountResult.Records
	}

	logger.WithField("processed", result.Processed).Info("backfill de insights finalizado")

	return result, nil
}

// syncAccount busca os insights de campanha de uma conta e faz upsert linha a
// linha. Erros ficam no resultado da conta; nunca derrubam o backfill.
func (s *Service) syncAccount(client metaclient.Client, tenantID string, account *domain.MetaAdAccount, filters *domain.InsightFilters) *domain.AccountSyncResult {
	accountResult := &domain.AccountSyncResult{AccountID: account.AccountID}
	logger := logrus.WithFields(logrus.Fields{
		"tenant_id":  tenantID,
		"account_id": account.AccountID,
	})

	records, err := client.FetchInsights(domain.InsightLevelCampaign, account.AccountID, filters, meta.RequiredInsightFields, "all_days")
	if err != nil {
		logger.WithError(err).Error("erro ao buscar insights da conta")
		accountResult.Error = err.Error()
		return accountResult
	}

	for idx := range records {
		record := &records[idx]

		dateStr := record.ResolveDate()
		if dateStr == "" {
			logger.WithField("campaign_id", record.CampaignID).Warn("registro de insight sem data, ignorando")
			continue
		}

		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			logger.WithField("date", dateStr).Warn("registro de insight com data inválida, ignorando")
			continue
		}

		entry, err := s.buildEntry(tenantID, account.AccountID, date, record)
		if err != nil {
			accountResult.Error = err.Error()
			return accountResult
		}

		if err := s.insightRepository.SaveOrUpdate(entry); err != nil {
			logger.WithError(err).Error("erro ao persistir insight")
			accountResult.Error = err.Error()
			return accountResult
		}

		accountResult.Records++
	}

	return accountResult
}

func (s *Service) buildEntry(tenantID, accountID string, date time.Time, record *metadomain.InsightRecord) (*domain.InsightEntry, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewSyncError(ErrGenerateID, tenantID, accountID, err.Error())
	}

	entry := &domain.InsightEntry{
		ID:        id,
		TenantID:  tenantID,
		Date:      date,
		Level:     domain.InsightLevelCampaign,
		AccountID: accountID,
		Metrics:   *meta.DeriveDailyMetrics(record),
	}

	if record.CampaignID != "" {
		campaignID := record.CampaignID
		entry.CampaignID = &campaignID
	}
	if record.Objective != "" {
		objective := record.Objective
		entry.Objective = &objective
	}

	return entry, nil
}
