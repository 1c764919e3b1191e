package account

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/infrastructure/integrator/meta/metaclient"
	"github.com/tagmage/tagmage-api/infrastructure/repository"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/pkg/apiErrors"
	"github.com/tagmage/tagmage-api/pkg/crypto"
	"github.com/tagmage/tagmage-api/pkg/utils"
)

// AccountService é o catálogo do assistente de conexão: navega businesses,
// contas e campanhas ao vivo na Graph API e persiste as seleções do tenant
type AccountService interface {
	ListBusinesses(tenantID string) ([]metadomain.Business, error)
	ListAdAccounts(tenantID, businessID string) ([]metadomain.AdAccount, error)
	ListCampaigns(tenantID string, accountIDs []string) ([]metadomain.Campaign, error)
	SaveSelections(tenantID string, request *domain.SaveSelectionsRequest) (*domain.SaveSelectionsResponse, error)
}

type Service struct {
	cfg                  *config.Config
	connectionRepository repository.ProviderConnectionRepository
	accountRepository    repository.AdAccountRepository
	campaignRepository   repository.CampaignRepository

	newClient func(conn *domain.ProviderConnection) (metaclient.Client, error)
}

func NewService(
	cfg *config.Config,
	encryptor *crypto.Encryptor,
	connectionRepository repository.ProviderConnectionRepository,
	accountRepository repository.AdAccountRepository,
	campaignRepository repository.CampaignRepository,
) *Service {
	return &Service{
		cfg:                  cfg,
		connectionRepository: connectionRepository,
		accountRepository:    accountRepository,
		campaignRepository:   campaignRepository,
		newClient: func(conn *domain.ProviderConnection) (metaclient.Client, error) {
			return metaclient.NewClientFromConnection(cfg, encryptor, conn)
		},
	}
}

// clientForTenant resolve a conexão ativa do tenant em um cliente autenticado
func (s *Service) clientForTenant(tenantID string) (metaclient.Client, *domain.ProviderConnection, error) {
	conn, err := s.connectionRepository.GetByTenantAndType(tenantID, domain.ProviderTypeMeta)
	if err != nil {
		return nil, nil, NewAccountError(err, apiErrors.ErrDatabaseOperation, "falha ao carregar a conexão do provedor")
	}
	if conn == nil {
		return nil, nil, NewAccountError(ErrNoConnection, apiErrors.ErrNoProviderConnection, "")
	}

	client, err := s.newClient(conn)
	if err != nil {
		return nil, nil, err
	}

	return client, conn, nil
}

func (s *Service) ListBusinesses(tenantID string) ([]metadomain.Business, error) {
	client, _, err := s.clientForTenant(tenantID)
	if err != nil {
		return nil, err
	}

	businesses, err := client.ListBusinesses()
	if err != nil {
		return nil, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, err.Error())
	}

	return businesses, nil
}

func (s *Service) ListAdAccounts(tenantID, businessID string) ([]metadomain.AdAccount, error) {
	client, _, err := s.clientForTenant(tenantID)
	if err != nil {
		return nil, err
	}

	accounts, err := client.ListAdAccounts(businessID)
	if err != nil {
		return nil, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, err.Error())
	}

	return accounts, nil
}

func (s *Service) ListCampaigns(tenantID string, accountIDs []string) ([]metadomain.Campaign, error) {
	client, _, err := s.clientForTenant(tenantID)
	if err != nil {
		return nil, err
	}

	campaigns := make([]metadomain.Campaign, 0)
	for _, accountID := range accountIDs {
		accountCampaigns, err := client.ListCampaigns(accountID)
		if err != nil {
			return nil, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, err.Error())
		}
		campaigns = append(campaigns, accountCampaigns...)
	}

	return campaigns, nil
}

// SaveSelections persiste o business, as contas e as campanhas escolhidas no
// assistente de conexão. Falha em um item não interrompe os demais; a resposta
// sinaliza erro parcial com as contagens do que foi gravado.
func (s *Service) SaveSelections(tenantID string, request *domain.SaveSelectionsRequest) (*domain.SaveSelectionsResponse, error) {
	_, conn, err := s.clientForTenant(tenantID)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"business_id": request.BusinessID,
	})

	response := &domain.SaveSelectionsResponse{}

	if request.BusinessID != "" {
		if err := s.saveBusiness(tenantID, conn.ProviderID, request); err != nil {
			logger.WithError(err).Error("erro ao salvar o business selecionado")
			response.Error = true
		}
	}

	for _, selection := range request.Accounts {
		if err := s.saveAccount(tenantID, conn.ProviderID, request.BusinessID, selection); err != nil {
			logger.WithError(err).WithField("account_id", selection.AccountID).Error("erro ao salvar conta selecionada")
			response.Error = true
			continue
		}
		response.Accounts++
	}

	for _, selection := range request.Campaigns {
		if err := s.saveCampaign(tenantID, selection); err != nil {
			logger.WithError(err).WithField("campaign_id", selection.CampaignID).Error("erro ao salvar campanha selecionada")
			response.Error = true
			continue
		}
		response.Campaigns++
	}

	logger.WithFields(logrus.Fields{
		"accounts":  response.Accounts,
		"campaigns": response.Campaigns,
	}).Info("seleções do assistente de conexão salvas")

	return response, nil
}

func (s *Service) saveBusiness(tenantID, providerID string, request *domain.SaveSelectionsRequest) error {
	id, err := utils.GenerateID()
	if err != nil {
		return NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	return s.accountRepository.SaveOrUpdateBusiness(&domain.MetaBusiness{
		ID:         id,
		TenantID:   tenantID,
		ProviderID: providerID,
		BusinessID: request.BusinessID,
		Name:       request.BusinessName,
	})
}

func (s *Service) saveAccount(tenantID, providerID, businessID string, selection domain.AdAccountSelection) error {
	id, err := utils.GenerateID()
	if err != nil {
		return NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	account := &domain.MetaAdAccount{
		ID:         id,
		TenantID:   tenantID,
		ProviderID: providerID,
		AccountID:  selection.AccountID,
		Name:       selection.Name,
		Currency:   selection.Currency,
		Timezone:   selection.Timezone,
	}
	if businessID != "" {
		account.BusinessID = &businessID
	}

	return s.accountRepository.SaveOrUpdate(account)
}

func (s *Service) saveCampaign(tenantID string, selection domain.AdCampaignSelection) error {
	id, err := utils.GenerateID()
	if err != nil {
		return NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	return s.campaignRepository.SaveOrUpdate(&domain.MetaCampaign{
		ID:         id,
		TenantID:   tenantID,
		AccountID:  selection.AccountID,
		CampaignID: selection.CampaignID,
		Name:       selection.Name,
		Objective:  selection.Objective,
		Status:     selection.Status,
	})
}
