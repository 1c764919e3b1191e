package domain

import (
	"time"
)

type ProviderType string

const (
	ProviderTypeMeta ProviderType = "meta"
)

type ProviderStatus string

const (
	ProviderStatusActive   ProviderStatus = "active"
	ProviderStatusInactive ProviderStatus = "inactive"
	ProviderStatusError    ProviderStatus = "error"
)

type Provider struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id"`
	Type      ProviderType   `json:"type"`
	Status    ProviderStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ProviderConnection guarda a credencial cifrada obtida no fluxo OAuth.
// O pipeline de sincronização apenas lê esta entidade; criação e renovação
// acontecem no callback de OAuth, fora deste serviço. Existe no máximo uma
// conexão por (tenant, provider), garantida por constraint de unicidade.
type ProviderConnection struct {
	ID                    string     `json:"id"`
	TenantID              string     `json:"tenant_id"`
	ProviderID            string     `json:"provider_id"`
	MetaUserID            *string    `json:"meta_user_id"`
	AccessTokenEncrypted  string     `json:"-"`
	RefreshTokenEncrypted *string    `json:"-"`
	TokenExpiresAt        *time.Time `json:"token_expires_at"`
	Permissions           []string   `json:"permissions"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
