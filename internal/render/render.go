package render

import (
	"fmt"
	"strings"

	"github.com/roach88/irlit/internal/literal"
	"github.com/roach88/irlit/internal/request"
)

// Mode controls how translation failures are handled.
type Mode int

const (
	// ModeCollectAll renders every literal and returns all failures.
	ModeCollectAll Mode = iota
	// ModeFailFast stops on the first failure.
	ModeFailFast
)

// Options configures a render run.
type Options struct {
	Mode Mode

	// IDs generates the run ID. Defaults to UUIDv7Generator.
	IDs RunIDGenerator
}

// Entry is one rendered literal.
type Entry struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
}

// Result holds the literals rendered from one batch.
type Result struct {
	RunID   string  `json:"run_id"`
	Batch   string  `json:"batch"`
	Source  string  `json:"source,omitempty"`
	Entries []Entry `json:"entries"`
}

// EntryError reports which literal of the batch failed.
type EntryError struct {
	Name  string
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("literals[%d] %s: %v", e.Index, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Render translates the batch. The result holds every literal that rendered
// successfully, in batch order, even when errors are returned.
func Render(batch *request.Batch, opts Options) (*Result, []error) {
	ids := opts.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}

	result := &Result{
		RunID:   ids.Generate(),
		Batch:   batch.Name,
		Source:  batch.Source,
		Entries: make([]Entry, 0, len(batch.Literals)),
	}

	var errs []error
	for i, lit := range batch.Literals {
		out, err := literal.Render(literal.Kind(lit.Kind), lit.Args)
		if err != nil {
			errs = append(errs, &EntryError{Name: lit.Name, Index: i, Err: err})
			if opts.Mode == ModeFailFast {
				return result, errs
			}
			continue
		}
		result.Entries = append(result.Entries, Entry{Name: lit.Name, Kind: lit.Kind, Literal: out})
	}

	return result, errs
}

// CppInitializers lists each entry as a "name = literal;" line.
func (r *Result) CppInitializers() string {
	var b strings.Builder
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%s = %s;\n", e.Name, e.Literal)
	}
	return b.String()
}
