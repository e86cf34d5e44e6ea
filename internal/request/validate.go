package request

import (
	"fmt"

	"github.com/roach88/irlit/internal/literal"
)

// Validation error codes (E210-E219)
const (
	ErrBatchNameEmpty   = "E210" // batch name is required
	ErrBatchNoLiterals  = "E211" // at least one literal required
	ErrLiteralNameEmpty = "E212" // literal name is required
	ErrDuplicateLiteral = "E213" // literal names must be unique
	ErrLiteralKind      = "E214" // kind missing or unknown
)

// ValidationError represents a batch schema error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks batch structure and returns every problem found.
// Token vocabulary is not checked here; that is the translator's job.
func Validate(b *Batch) []ValidationError {
	var errs []ValidationError

	if b.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "batch name is required",
			Code:    ErrBatchNameEmpty,
		})
	}
	if len(b.Literals) == 0 {
		errs = append(errs, ValidationError{
			Field:   "literals",
			Message: "at least one literal is required",
			Code:    ErrBatchNoLiterals,
		})
	}

	seen := make(map[string]int, len(b.Literals))
	for i, lit := range b.Literals {
		field := fmt.Sprintf("literals[%d]", i)
		line := 0
		if lit.Pos.IsValid() {
			line = lit.Pos.Line()
		}

		if lit.Name == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "literal name is required",
				Code:    ErrLiteralNameEmpty,
				Line:    line,
			})
		} else if prev, dup := seen[lit.Name]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate literal name %q (first at literals[%d])", lit.Name, prev),
				Code:    ErrDuplicateLiteral,
				Line:    line,
			})
		} else {
			seen[lit.Name] = i
		}

		if lit.Kind == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".kind",
				Message: "kind is required",
				Code:    ErrLiteralKind,
				Line:    line,
			})
		} else if _, err := literal.ParseKind(lit.Kind); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".kind",
				Message: fmt.Sprintf("unknown kind %q", lit.Kind),
				Code:    ErrLiteralKind,
				Line:    line,
			})
		}
	}

	return errs
}
