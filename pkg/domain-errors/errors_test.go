package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrap(base, CodeTimeout, "policy analysis")

	t.Run("direct code", func(t *testing.T) {
		assert.True(t, HasCode(wrapped, CodeTimeout))
		assert.False(t, HasCode(wrapped, CodeNotFound))
	})

	t.Run("through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("stage failed: %w", wrapped)
		assert.True(t, Is(err, CodeTimeout))
		assert.ErrorIs(t, err, base)
	})

	t.Run("nested coded errors", func(t *testing.T) {
		outer := Wrap(New(CodeMalformedResponse, "bad json"), CodeInternal, "locate")
		assert.True(t, HasCode(outer, CodeMalformedResponse))
		assert.Equal(t, CodeInternal, CodeOf(outer))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.False(t, HasCode(base, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(base))
	})
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:        http.StatusBadRequest,
		CodeBadRequest:        http.StatusBadRequest,
		CodeNotFound:          http.StatusNotFound,
		CodeTimeout:           http.StatusGatewayTimeout,
		CodeMalformedResponse: http.StatusInternalServerError,
		CodeInternal:          http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, HTTPStatus(code), string(code))
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "locate: eof", Wrap(errors.New("eof"), CodeInternal, "locate").Error())
	assert.Equal(t, "Domain is required", New(CodeValidation, "Domain is required").Error())
}
