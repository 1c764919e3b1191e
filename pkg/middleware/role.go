package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso com base no role presente nas claims.
// allowedRoles é a lista de roles que têm permissão para acessar a rota.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", claims.UserID, claims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OwnerOrAdmin permite acesso apenas para donos e administradores do tenant
func OwnerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleOwner, domain.RoleAdmin})
}

// AllRoles permite acesso para qualquer membro autenticado do tenant
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember})
}
