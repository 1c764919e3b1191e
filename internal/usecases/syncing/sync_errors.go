package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos do pipeline de sincronização
var (
	ErrNoConnection   = errors.New("tenant sem conexão ativa com o provedor")
	ErrNoAccounts     = errors.New("tenant sem contas de anúncios selecionadas")
	ErrFetchInsights  = errors.New("erro ao buscar insights do provedor")
	ErrPersistInsight = errors.New("erro ao persistir insight")
	ErrGenerateID     = errors.New("erro ao gerar ID")
)

// SyncError é um erro com contexto adicional de uma execução de backfill
type SyncError struct {
	Err       error
	TenantID  string
	AccountID string
	Details   string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, tenantID, accountID, details string) *SyncError {
	return &SyncError{
		Err:       err,
		TenantID:  tenantID,
		AccountID: accountID,
		Details:   details,
	}
}
