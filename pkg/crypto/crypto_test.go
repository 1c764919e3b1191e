package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "5a8f1c3b9d2e4f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a"

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	require.NoError(t, err)

	encrypted, err := enc.Encrypt("EAABsbCS1iHgBO7token")
	require.NoError(t, err)

	// Formato persistido: iv:tag:ciphertext em hexadecimal
	assert.Len(t, strings.Split(encrypted, ":"), 3)

	decrypted, err := enc.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "EAABsbCS1iHgBO7token", decrypted)
}

func TestEncryptor_NonHexKeyIsDerived(t *testing.T) {
	enc, err := NewEncryptor("uma-senha-qualquer")
	require.NoError(t, err)

	encrypted, err := enc.Encrypt("token")
	require.NoError(t, err)

	decrypted, err := enc.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "token", decrypted)
}

func TestEncryptor_MissingKey(t *testing.T) {
	_, err := NewEncryptor("")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestEncryptor_InvalidFormat(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{"sem separadores", "abc123"},
		{"partes demais", "aa:bb:cc:dd"},
		{"iv invalido", "zz:bb:cc"},
		{"iv curto", "aabb:00112233445566778899aabbccddeeff:cc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Decrypt(tt.input)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestEncryptor_TamperedCiphertext(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	require.NoError(t, err)

	encrypted, err := enc.Encrypt("token-sensivel")
	require.NoError(t, err)

	parts := strings.Split(encrypted, ":")
	flipped := "00" + parts[2][2:]
	if flipped == parts[2] {
		flipped = "11" + parts[2][2:]
	}
	tampered := parts[0] + ":" + parts[1] + ":" + flipped

	_, err = enc.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestEncryptor_WrongKey(t *testing.T) {
	enc, err := NewEncryptor(testKey)
	require.NoError(t, err)

	other, err := NewEncryptor("0000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)

	encrypted, err := enc.Encrypt("token")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}
