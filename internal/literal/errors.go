package literal

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes translation errors.
type ErrorCode string

const (
	// ErrCodeUnknownToken indicates a token is absent from the kind's table.
	ErrCodeUnknownToken ErrorCode = "UNKNOWN_TOKEN"

	// ErrCodeUnknownKind indicates the translator name is not recognized.
	ErrCodeUnknownKind ErrorCode = "UNKNOWN_KIND"

	// ErrCodeInvalidInteger indicates an ints argument is not a base-10 int64.
	ErrCodeInvalidInteger ErrorCode = "INVALID_INTEGER"

	// ErrCodeArity indicates a scalar kind got other than one argument.
	ErrCodeArity ErrorCode = "ARITY"
)

// TranslateError is returned by every failing translation.
type TranslateError struct {
	Code ErrorCode

	// Kind is the translator that rejected the input.
	Kind Kind

	// Token is the offending input, verbatim.
	Token string

	// Index is the element position for list kinds, -1 otherwise.
	Index int

	Message string
}

// Error implements the error interface.
func (e *TranslateError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (kind=%s, index=%d)", e.Code, e.Message, e.Kind, e.Index)
	}
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s (kind=%s)", e.Code, e.Message, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func unknownToken(kind Kind, token string) *TranslateError {
	return &TranslateError{
		Code:    ErrCodeUnknownToken,
		Kind:    kind,
		Token:   token,
		Index:   -1,
		Message: fmt.Sprintf("unknown %s token %q", kind, token),
	}
}

// atIndex records the list position of an element error.
func atIndex(err error, i int) error {
	var te *TranslateError
	if errors.As(err, &te) {
		cp := *te
		cp.Index = i
		return &cp
	}
	return err
}

// IsUnknownToken returns true if err is an UnknownToken error.
// Uses errors.As to handle wrapped errors.
func IsUnknownToken(err error) bool {
	return hasCode(err, ErrCodeUnknownToken)
}

// IsUnknownKind returns true if err names an unrecognized translator.
func IsUnknownKind(err error) bool {
	return hasCode(err, ErrCodeUnknownKind)
}

// CodeOf returns the error code of a TranslateError, or "" for other errors.
func CodeOf(err error) ErrorCode {
	var te *TranslateError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func hasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
