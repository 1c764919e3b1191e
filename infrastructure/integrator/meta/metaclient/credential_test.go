package metaclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/pkg/crypto"
)

func TestNewClientFromConnection(t *testing.T) {
	enc, err := crypto.NewEncryptor("chave-de-teste")
	require.NoError(t, err)

	encrypted, err := enc.Encrypt("bearer-token")
	require.NoError(t, err)

	conn := &domain.ProviderConnection{
		TenantID:             "tenant-1",
		AccessTokenEncrypted: encrypted,
	}

	client, err := NewClientFromConnection(&config.Config{}, enc, conn)
	require.NoError(t, err)

	metaClient, ok := client.(*MetaClient)
	require.True(t, ok)
	assert.Equal(t, "bearer-token", metaClient.accessToken)
}

func TestNewClientFromConnection_CredencialCorrompida(t *testing.T) {
	enc, err := crypto.NewEncryptor("chave-de-teste")
	require.NoError(t, err)

	conn := &domain.ProviderConnection{
		TenantID:             "tenant-1",
		AccessTokenEncrypted: "blob-invalido",
	}

	_, err = NewClientFromConnection(&config.Config{}, enc, conn)
	require.Error(t, err)

	var credErr *CredentialError
	require.True(t, errors.As(err, &credErr))
	assert.Equal(t, "tenant-1", credErr.TenantID)
	assert.ErrorIs(t, err, crypto.ErrInvalidFormat)
}
