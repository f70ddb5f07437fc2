package secret

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestSealer(t *testing.T) {
	t.Run("sem chave mantém texto puro", func(t *testing.T) {
		s, err := NewSealer("")
		require.NoError(t, err)
		assert.False(t, s.Enabled())

		sealed, err := s.Seal("EAAG-token")
		require.NoError(t, err)
		assert.Equal(t, "EAAG-token", sealed)

		opened, err := s.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, "EAAG-token", opened)
	})

	t.Run("com chave cifra e decifra", func(t *testing.T) {
		s, err := NewSealer(testKey)
		require.NoError(t, err)

		sealed, err := s.Seal("EAAG-token")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(sealed, "v1:"))
		assert.NotContains(t, sealed, "EAAG-token")

		opened, err := s.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, "EAAG-token", opened)
	})

	t.Run("valor legado em texto puro passa direto", func(t *testing.T) {
		s, err := NewSealer(testKey)
		require.NoError(t, err)

		opened, err := s.Open("IGQV-legacy")
		require.NoError(t, err)
		assert.Equal(t, "IGQV-legacy", opened)
	})

	t.Run("caixa adulterada é rejeitada", func(t *testing.T) {
		s, err := NewSealer(testKey)
		require.NoError(t, err)

		_, err = s.Open("v1:AAAA")
		assert.True(t, errors.Is(err, ErrInvalidSealedValue))
	})

	t.Run("chave de tamanho errado", func(t *testing.T) {
		_, err := NewSealer("abcd")
		assert.Error(t, err)
	})
}
