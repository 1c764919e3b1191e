package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/domain"
	"github.com/tagmage/tagmage-api/infrastructure/integrator/meta/metaclient"
	clientmocks "github.com/tagmage/tagmage-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/tagmage/tagmage-api/infrastructure/repository/mocks"
	"github.com/tagmage/tagmage-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testService(ctrl *gomock.Controller) (*Service, *mocks.MockProviderConnectionRepository, *mocks.MockAdAccountRepository, *mocks.MockCampaignRepository, *clientmocks.MockClient) {
	connRepo := mocks.NewMockProviderConnectionRepository(ctrl)
	accountRepo := mocks.NewMockAdAccountRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := &Service{
		connectionRepository: connRepo,
		accountRepository:    accountRepo,
		campaignRepository:   campaignRepo,
		newClient: func(conn *domain.ProviderConnection) (metaclient.Client, error) {
			return client, nil
		},
	}

	return service, connRepo, accountRepo, campaignRepo, client
}

func testConnection() *domain.ProviderConnection {
	return &domain.ProviderConnection{
		ID:                   "conn-1",
		TenantID:             "tenant-1",
		ProviderID:           "prov-1",
		AccessTokenEncrypted: "blob",
	}
}

func TestListBusinesses_DevolveCatalogoDoProvedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, connRepo, _, _, client := testService(ctrl)

	connRepo.EXPECT().
		GetByTenantAndType("tenant-1", domain.ProviderTypeMeta).
		Return(testConnection(), nil)

	client.EXPECT().
		ListBusinesses().
		Return([]metadomain.Business{{ID: "biz-1", Name: "Loja"}}, nil)

	businesses, err := service.ListBusinesses("tenant-1")
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, "biz-1", businesses[0].ID)
}

func TestListBusinesses_SemConexaoAtiva(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, connRepo, _, _, _ := testService(ctrl)

	connRepo.EXPECT().
		GetByTenantAndType("tenant-1", domain.ProviderTypeMeta).
		Return(nil, nil)

	businesses, err := service.ListBusinesses("tenant-1")
	assert.Nil(t, businesses)
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestListCampaigns_AgregaVariasContas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, connRepo, _, _, client := testService(ctrl)

	connRepo.EXPECT().
		GetByTenantAndType("tenant-1", domain.ProviderTypeMeta).
		Return(testConnection(), nil)

	client.EXPECT().
		ListCampaigns("act_1").
		Return([]metadomain.Campaign{{ID: "camp-1"}}, nil)
	client.EXPECT().
		ListCampaigns("act_2").
		Return([]metadomain.Campaign{{ID: "camp-2"}, {ID: "camp-3"}}, nil)

	campaigns, err := service.ListCampaigns("tenant-1", []string{"act_1", "act_2"})
	require.NoError(t, err)
	assert.Len(t, campaigns, 3)
}

func TestSaveSelections_PersisteContasECampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, connRepo, accountRepo, campaignRepo, _ := testService(ctrl)

	connRepo.EXPECT().
		GetByTenantAndType("tenant-1", domain.ProviderTypeMeta).
		Return(testConnection(), nil)

	var savedBusiness *domain.MetaBusiness
	accountRepo.EXPECT().
		SaveOrUpdateBusiness(gomock.Any()).
		DoAndReturn(func(b *domain.MetaBusiness) error {
			savedBusiness = b
			return nil
		})

	var savedAccount *domain.MetaAdAccount
	accountRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(a *domain.MetaAdAccount) error {
			savedAccount = a
			return nil
		})

	campaignRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	response, err := service.SaveSelections("tenant-1", &domain.SaveSelectionsRequest{
		BusinessID:   "biz-1",
		BusinessName: "Loja",
		Accounts: []domain.AdAccountSelection{
			{AccountID: "act_1", Name: "Conta Principal"},
		},
		Campaigns: []domain.AdCampaignSelection{
			{AccountID: "act_1", CampaignID: "camp-1", Name: "Campanha Verão"},
		},
	})

	require.NoError(t, err)
	assert.False(t, response.Error)
	assert.Equal(t, 1, response.Accounts)
	assert.Equal(t, 1, response.Campaigns)

	require.NotNil(t, savedBusiness)
	assert.Equal(t, "tenant-1", savedBusiness.TenantID)
	assert.Equal(t, "prov-1", savedBusiness.ProviderID)

	require.NotNil(t, savedAccount)
	assert.Equal(t, "act_1", savedAccount.AccountID)
	require.NotNil(t, savedAccount.BusinessID)
	assert.Equal(t, "biz-1", *savedAccount.BusinessID)
}

func TestSaveSelections_FalhaParcialNaoInterrompeOsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, connRepo, accountRepo, campaignRepo, _ := testService(ctrl)

	connRepo.EXPECT().
		GetByTenantAndType("tenant-1", domain.ProviderTypeMeta).
		Return(testConnection(), nil)

	gomock.InOrder(
		accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("constraint violation")),
		accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
	)

	campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	response, err := service.SaveSelections("tenant-1", &domain.SaveSelectionsRequest{
		Accounts: []domain.AdAccountSelection{
			{AccountID: "act_1", Name: "Falha"},
			{AccountID: "act_2", Name: "Sucesso"},
		},
		Campaigns: []domain.AdCampaignSelection{
			{AccountID: "act_2", CampaignID: "camp-1", Name: "Campanha"},
		},
	})

	require.NoError(t, err)
	assert.True(t, response.Error)
	assert.Equal(t, 1, response.Accounts)
	assert.Equal(t, 1, response.Campaigns)
}
