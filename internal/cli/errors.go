package cli

import (
	"errors"
	"strings"

	"github.com/AlexanderBrevig/mdb/internal/mdberr"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidInput    = "INVALID_INPUT"
	ErrIO              = "IO_ERROR"
	ErrExternalProcess = "EXTERNAL_PROCESS_ERROR"
	ErrConfigInvalid   = "CONFIG_INVALID"
)

func codeFor(err error) string {
	var e *mdberr.Error
	if !errors.As(err, &e) {
		return ErrConfigInvalid
	}
	switch e.Kind {
	case mdberr.KindNotFound:
		return ErrNotFound
	case mdberr.KindInvalidInput:
		return ErrInvalidInput
	case mdberr.KindExternalProcess:
		return ErrExternalProcess
	default:
		return ErrIO
	}
}

func suggestionFor(err error) string {
	switch {
	case errors.Is(err, mdberr.ErrInvalidInput) && strings.Contains(err.Error(), "No template named"):
		return "Run 'mdb templates' to see configured templates"
	case errors.Is(err, mdberr.ErrExternalProcess):
		return "Check $EDITOR (or config.editor) and any template name command"
	default:
		return ""
	}
}
