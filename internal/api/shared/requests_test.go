package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	Name string `json:"name" validate:"required"`
}

type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error { return s.err }

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"acme"}`))

		var got taggedRequest
		require.NoError(t, DecodeJSON(req, &got))
		assert.Equal(t, "acme", got.Name)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{nope"))

		var got taggedRequest
		assert.Error(t, DecodeJSON(req, &got))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Run("struct tags", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(taggedRequest{Name: "acme"}))
		assert.Error(t, ValidateRequest(taggedRequest{}))
	})

	t.Run("a Validate method takes precedence over tags", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(selfValidating{}))

		wantErr := errors.New("bad request")
		assert.ErrorIs(t, ValidateRequest(selfValidating{err: wantErr}), wantErr)
	})
}
