// Package secret cifra tokens de acesso antes de irem para o banco.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedPrefix = "v1:"
	keySize      = 32
	nonceSize    = 24
)

var ErrInvalidSealedValue = errors.New("valor cifrado inválido")

// Sealer cifra e decifra segredos. Sem chave configurada, opera em texto puro.
type Sealer struct {
	key     *[keySize]byte
	enabled bool
}

// NewSealer recebe a chave em hexadecimal (64 caracteres). Chave vazia desabilita a cifragem.
func NewSealer(hexKey string) (*Sealer, error) {
	if hexKey == "" {
		return &Sealer{}, nil
	}

	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errors.Wrap(err, "TOKEN_ENCRYPTION_KEY não é hexadecimal")
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("TOKEN_ENCRYPTION_KEY deve ter %d bytes, recebeu %d", keySize, len(raw))
	}

	var key [keySize]byte
	copy(key[:], raw)
	return &Sealer{key: &key, enabled: true}, nil
}

func (s *Sealer) Enabled() bool {
	return s != nil && s.enabled
}

// Seal devolve "v1:" + base64(nonce || caixa)
func (s *Sealer) Seal(plaintext string) (string, error) {
	if !s.Enabled() {
		return plaintext, nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "erro ao gerar nonce")
	}

	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, s.key)
	return sealedPrefix + base64.StdEncoding.EncodeToString(box), nil
}

// Open aceita valores cifrados e valores legados em texto puro
func (s *Sealer) Open(value string) (string, error) {
	if !strings.HasPrefix(value, sealedPrefix) {
		return value, nil
	}
	if !s.Enabled() {
		return "", errors.Wrap(ErrInvalidSealedValue, "token cifrado mas TOKEN_ENCRYPTION_KEY ausente")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrInvalidSealedValue
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, s.key)
	if !ok {
		return "", ErrInvalidSealedValue
	}
	return string(plain), nil
}
