package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	ivLength  = 16
	keyLength = 32
)

var (
	// ErrMissingKey indica que a chave de criptografia não foi configurada
	ErrMissingKey = errors.New("chave de criptografia não configurada")
	// ErrInvalidFormat indica que o texto cifrado não está no formato iv:tag:ciphertext
	ErrInvalidFormat = errors.New("formato de texto cifrado inválido")
	// ErrDecryptFailed indica falha de autenticação ou chave incorreta
	ErrDecryptFailed = errors.New("falha ao descriptografar: dados corrompidos ou chave incorreta")
)

// Encryptor encapsula a criptografia simétrica usada para tokens de acesso.
// O formato de saída é "iv:tag:ciphertext" em hexadecimal, compatível com o
// formato persistido em provider_connections.access_token_encrypted.
type Encryptor struct {
	key []byte
}

// NewEncryptor cria um Encryptor a partir da chave configurada. Chaves em
// hexadecimal são usadas diretamente (truncadas em 32 bytes); qualquer outro
// valor passa por derivação PBKDF2 para chegar aos 32 bytes do AES-256.
func NewEncryptor(secret string) (*Encryptor, error) {
	if secret == "" {
		return nil, ErrMissingKey
	}

	if raw, err := hex.DecodeString(secret); err == nil && len(raw) >= keyLength {
		return &Encryptor{key: raw[:keyLength]}, nil
	}

	key := pbkdf2.Key([]byte(secret), []byte("tagmage-token-key"), 4096, keyLength, sha256.New)
	return &Encryptor{key: key}, nil
}

// Encrypt cifra o texto e retorna a representação opaca iv:tag:ciphertext
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)

	// O GCM devolve ciphertext||tag; o formato persistido separa os dois
	tagStart := len(sealed) - gcm.Overhead()
	ciphertext, tag := sealed[:tagStart], sealed[tagStart:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	), nil
}

// Decrypt abre um texto cifrado no formato iv:tag:ciphertext. Retorna
// ErrInvalidFormat para entradas malformadas e ErrDecryptFailed quando a
// autenticação do GCM falha (dados adulterados ou chave errada).
func (e *Encryptor) Decrypt(encrypted string) (string, error) {
	parts := strings.Split(encrypted, ":")
	if len(parts) != 3 {
		return "", ErrInvalidFormat
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivLength {
		return "", ErrInvalidFormat
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidFormat
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidFormat
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return "", err
	}

	if len(tag) != gcm.Overhead() {
		return "", ErrInvalidFormat
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrDecryptFailed
	}

	return string(plaintext), nil
}
