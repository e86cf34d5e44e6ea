package request

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue/token"
)

// Batch is one request file.
type Batch struct {
	// Name identifies the batch in output and golden files.
	Name string `yaml:"name"`

	// Description is free text, ignored by rendering.
	Description string `yaml:"description,omitempty"`

	// Literals are rendered in file order.
	Literals []Literal `yaml:"literals"`

	// Source is the path the batch was loaded from.
	Source string `yaml:"-"`
}

// Literal asks for one translation.
type Literal struct {
	Name string `yaml:"name"`

	// Kind names the translator (see literal.Kinds).
	Kind string `yaml:"kind"`

	// Args are the IR tokens. Integer and boolean scalars are normalized to
	// their canonical text (0x10 becomes "16"); null and float scalars are
	// rejected at load time.
	Args []string `yaml:"args,omitempty"`

	// Pos is the CUE source position, invalid for YAML batches.
	Pos token.Pos `yaml:"-"`
}

// Load error codes (E001-E007 shared with the CLI).
const (
	ErrCodeNotFound    = "E005"
	ErrCodeLoadFailed  = "E004"
	ErrCodeBuildFailed = "E006"
	ErrCodeFormat      = "E008"
)

// LoadError represents an error that occurred while reading a batch file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads a batch file, choosing the decoder by extension.
// The returned batch is decoded but not validated.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("batch file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("reading batch file: %v", err)}
	}

	var batch *Batch
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		batch, err = DecodeYAML(data)
	case ".cue":
		batch, err = DecodeCUE(path, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported batch format %q: want .yaml, .yml or .cue", filepath.Ext(path)),
		}
	}
	if err != nil {
		return nil, err
	}

	batch.Source = path
	return batch, nil
}
