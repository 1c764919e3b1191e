package metaclient

import (
	"fmt"

	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/pkg/crypto"
)

// CredentialError indica falha ao decifrar a credencial de uma conexão.
// Nenhum estado parcial de credencial faz sentido, então este erro aborta a
// sincronização inteira do tenant.
type CredentialError struct {
	TenantID string
	Err      error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credencial inválida para o tenant %s: %v", e.TenantID, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// NewClientFromConnection decifra o token da conexão e devolve um cliente
// autenticado. A fábrica recebe a capacidade de decifrar por injeção; a
// credencial em claro nunca sai deste escopo.
func NewClientFromConnection(cfg *config.Config, enc *crypto.Encryptor, conn *domain.ProviderConnection) (Client, error) {
	accessToken, err := enc.Decrypt(conn.AccessTokenEncrypted)
	if err != nil {
		return nil, &CredentialError{TenantID: conn.TenantID, Err: err}
	}

	return NewClient(cfg, accessToken), nil
}
