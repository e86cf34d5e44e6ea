package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlBatch mirrors Batch with args kept as nodes so their resolved tags
// are visible. Decoding into []string drops null entries silently.
type yamlBatch struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Literals    []yamlLiteral `yaml:"literals"`
}

type yamlLiteral struct {
	Name string      `yaml:"name"`
	Kind string      `yaml:"kind"`
	Args []yaml.Node `yaml:"args,omitempty"`
}

// DecodeYAML parses a YAML batch.
// Unknown fields are rejected so typos like "literal:" surface immediately.
// Arguments resolve the same way as in CUE batches: integers and booleans
// are normalized, while null, float and non-scalar arguments are rejected.
func DecodeYAML(data []byte) (*Batch, error) {
	var raw yamlBatch
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "batch file is empty"}
		}
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	batch := &Batch{
		Name:        raw.Name,
		Description: raw.Description,
	}
	for _, rl := range raw.Literals {
		lit := Literal{Name: rl.Name, Kind: rl.Kind}
		if rl.Args != nil {
			lit.Args = make([]string, 0, len(rl.Args))
			for i := range rl.Args {
				arg, err := yamlScalar(&rl.Args[i])
				if err != nil {
					return nil, err
				}
				lit.Args = append(lit.Args, arg)
			}
		}
		batch.Literals = append(batch.Literals, lit)
	}
	return batch, nil
}

// yamlScalar converts one argument node to its token text.
func yamlScalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", yamlArgError(n, "argument must be a string, int or bool")
	}

	switch n.ShortTag() {
	case "!!str":
		return n.Value, nil
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return "", yamlArgError(n, fmt.Sprintf("integer %s out of range", n.Value))
		}
		return strconv.FormatInt(v, 10), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return "", yamlArgError(n, fmt.Sprintf("invalid bool %s", n.Value))
		}
		return strconv.FormatBool(b), nil
	case "!!null":
		return "", yamlArgError(n, "argument must not be null")
	}
	return "", yamlArgError(n, fmt.Sprintf("argument must be a string, int or bool, got %s", n.ShortTag()))
}

func yamlArgError(n *yaml.Node, msg string) *LoadError {
	return &LoadError{
		Code:    ErrCodeLoadFailed,
		Message: fmt.Sprintf("line %d column %d: %s", n.Line, n.Column, msg),
	}
}
