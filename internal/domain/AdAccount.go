package domain

import (
	"time"
)

type MetaBusiness struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	ProviderID string    `json:"provider_id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MetaAdAccount é a seleção feita no assistente de conexão: identifica uma
// conta de anúncios externa que entra no escopo da sincronização do tenant.
type MetaAdAccount struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	ProviderID string    `json:"provider_id"`
	BusinessID *string   `json:"business_id"`
	AccountID  string    `json:"account_id"`
	Name       string    `json:"name"`
	Currency   *string   `json:"currency"`
	Timezone   *string   `json:"timezone"`
	Status     *string   `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SaveSelectionsRequest é o payload do assistente de conexão com as contas e
// campanhas escolhidas para rastreamento
type SaveSelectionsRequest struct {
	BusinessID   string                `json:"business_id"`
	BusinessName string                `json:"business_name"`
	Accounts     []AdAccountSelection  `json:"accounts"`
	Campaigns    []AdCampaignSelection `json:"campaigns"`
}

type AdAccountSelection struct {
	AccountID string  `json:"account_id"`
	Name      string  `json:"name"`
	Currency  *string `json:"currency"`
	Timezone  *string `json:"timezone"`
}

type AdCampaignSelection struct {
	AccountID  string  `json:"account_id"`
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Objective  *string `json:"objective"`
	Status     *string `json:"status"`
}

type SaveSelectionsResponse struct {
	Accounts  int  `json:"accounts"`
	Campaigns int  `json:"campaigns"`
	Error     bool `json:"error"`
}
