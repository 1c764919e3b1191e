package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles emitidos pelo provedor de identidade externo
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Claims são as claims esperadas no bearer token emitido pelo provedor de
// identidade. O serviço não emite tokens; apenas valida e extrai o tenant.
type Claims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
