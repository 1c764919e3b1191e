package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusCancelled TenantStatus = "cancelled"
)

// Tenant é a fronteira de isolamento: todas as demais entidades pertencem a
// exatamente um tenant e não existe referência entre tenants distintos.
type Tenant struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Plan      string       `json:"plan"`
	Status    TenantStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
