package shared

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	WordID string `json:"word_id" validate:"required"`
	Limit  int    `json:"limit"   validate:"gte=0"`
}

type selfValidatingRequest struct {
	Err error
}

func (r *selfValidatingRequest) Validate() error { return r.Err }

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/attempts",
			bytes.NewBufferString(`{"word_id": "w1", "limit": 5}`))

		var target taggedRequest
		require.NoError(t, DecodeJSON(req, &target))
		assert.Equal(t, "w1", target.WordID)
		assert.Equal(t, 5, target.Limit)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/attempts",
			bytes.NewBufferString(`{"word_id":`))

		var target taggedRequest
		assert.Error(t, DecodeJSON(req, &target))
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/attempts", bytes.NewBufferString(""))

		var target taggedRequest
		assert.Error(t, DecodeJSON(req, &target))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("tags pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateRequest(taggedRequest{WordID: "w1"}))
	})

	t.Run("tags fail", func(t *testing.T) {
		t.Parallel()
		err := ValidateRequest(taggedRequest{Limit: -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WordID")
	})

	t.Run("prefers the type's own Validate", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("domain rule broken")
		assert.ErrorIs(t, ValidateRequest(&selfValidatingRequest{Err: sentinel}), sentinel)
		assert.NoError(t, ValidateRequest(&selfValidatingRequest{}))
	})
}
