package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/irlit/internal/literal"
	"github.com/roach88/irlit/internal/request"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // Batch file unreadable or malformed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeFormat      = "E008" // Unsupported batch file extension

	// Translation errors
	ErrCodeUnknownToken   = "E201" // Token not in the kind's table
	ErrCodeUnknownKind    = "E202" // Kind not recognized
	ErrCodeInvalidInteger = "E203" // ints argument is not an integer
	ErrCodeArity          = "E204" // Scalar kind given other than one token
)

// MapTranslateErrorCode maps a translation error to a CLI error code.
func MapTranslateErrorCode(err error) string {
	switch literal.CodeOf(err) {
	case literal.ErrCodeUnknownToken:
		return ErrCodeUnknownToken
	case literal.ErrCodeUnknownKind:
		return ErrCodeUnknownKind
	case literal.ErrCodeInvalidInteger:
		return ErrCodeInvalidInteger
	case literal.ErrCodeArity:
		return ErrCodeArity
	default:
		return ErrCodeGeneric
	}
}

// translateExitCode separates usage mistakes from tokens the tables reject.
func translateExitCode(err error) int {
	switch literal.CodeOf(err) {
	case literal.ErrCodeUnknownKind, literal.ErrCodeArity:
		return ExitCommandError
	default:
		return ExitFailure
	}
}

// parseLoadError extracts error code and message from a batch load error.
func parseLoadError(err error) (string, string) {
	var loadErr *request.LoadError
	if errors.As(err, &loadErr) {
		if loadErr.Pos.IsValid() {
			return loadErr.Code, fmt.Sprintf("%s:%d:%d: %s",
				loadErr.Pos.Filename(), loadErr.Pos.Line(), loadErr.Pos.Column(), loadErr.Message)
		}
		return loadErr.Code, loadErr.Message
	}
	return ErrCodeGeneric, err.Error()
}

func asTranslateError(err error) *literal.TranslateError {
	var te *literal.TranslateError
	if errors.As(err, &te) {
		return te
	}
	return nil
}
