package errors

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrValidation:  http.StatusBadRequest,
		ErrNotFound:    http.StatusNotFound,
		ErrInternal:    http.StatusInternalServerError,
		ErrAITransport: http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, New(code, "x").HTTPStatus(), string(code))
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	err := Wrap(ErrAITransport, "chat completion failed", io.ErrUnexpectedEOF)

	assert.Equal(t, "AI_TRANSPORT_ERROR: chat completion failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "NOT_FOUND: soundscape not found", NotFound("soundscape").Error())
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(ErrAIEmptyResponse, "no content"))

	assert.Equal(t, ErrAIEmptyResponse, CodeOf(wrapped))
	assert.Equal(t, ErrInternal, CodeOf(io.EOF))
}
