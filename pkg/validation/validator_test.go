package validation

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeInput struct {
	Code     string `json:"code" validate:"required,min=10,max=1000"`
	Provider string `json:"provider" validate:"oauth_provider"`
}

func TestStruct(t *testing.T) {
	t.Run("entrada válida", func(t *testing.T) {
		assert.NoError(t, Struct(codeInput{Code: "AQB1234567890", Provider: "instagram"}))
	})

	t.Run("código curto informa o campo json", func(t *testing.T) {
		err := Struct(codeInput{Code: "short", Provider: "facebook"})
		require.Error(t, err)

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "code", fieldErr.Field)
		assert.Equal(t, "min", fieldErr.Tag)
	})

	t.Run("código longo demais", func(t *testing.T) {
		err := Struct(codeInput{Code: strings.Repeat("a", 1001), Provider: "facebook"})

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "max", fieldErr.Tag)
	})

	t.Run("provider desconhecido", func(t *testing.T) {
		err := Struct(codeInput{Code: "AQB1234567890", Provider: "tiktok"})

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "provider", fieldErr.Field)
		assert.Equal(t, "oauth_provider", fieldErr.Tag)
	})
}
