package request

import (
	"fmt"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// DecodeCUE builds a batch from CUE source. filename is used for positions.
func DecodeCUE(filename string, data []byte) (*Batch, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(err)
	}

	batch := &Batch{}

	var err error
	if batch.Name, err = optionalString(v, "name"); err != nil {
		return nil, err
	}
	if batch.Description, err = optionalString(v, "description"); err != nil {
		return nil, err
	}

	litsVal := v.LookupPath(cue.ParsePath("literals"))
	if !litsVal.Exists() {
		return batch, nil
	}
	iter, err := litsVal.List()
	if err != nil {
		return nil, cueLoadError(err)
	}
	for iter.Next() {
		lit, err := decodeCUELiteral(iter.Value())
		if err != nil {
			return nil, err
		}
		batch.Literals = append(batch.Literals, lit)
	}

	return batch, nil
}

func decodeCUELiteral(v cue.Value) (Literal, error) {
	lit := Literal{Pos: v.Pos()}

	var err error
	if lit.Name, err = optionalString(v, "name"); err != nil {
		return lit, err
	}
	if lit.Kind, err = optionalString(v, "kind"); err != nil {
		return lit, err
	}

	argsVal := v.LookupPath(cue.ParsePath("args"))
	if !argsVal.Exists() {
		return lit, nil
	}
	iter, err := argsVal.List()
	if err != nil {
		return lit, cueLoadError(err)
	}
	lit.Args = []string{}
	for iter.Next() {
		arg, err := cueScalar(iter.Value())
		if err != nil {
			return lit, err
		}
		lit.Args = append(lit.Args, arg)
	}
	return lit, nil
}

// cueScalar keeps the source text of strings, integers and booleans.
func cueScalar(v cue.Value) (string, error) {
	switch v.Kind() {
	case cue.StringKind:
		return v.String()
	case cue.IntKind:
		n, err := v.Int64()
		if err != nil {
			return "", cueLoadError(err)
		}
		return strconv.FormatInt(n, 10), nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return "", cueLoadError(err)
		}
		return strconv.FormatBool(b), nil
	}
	return "", &LoadError{
		Code:    ErrCodeBuildFailed,
		Message: fmt.Sprintf("argument must be a string, int or bool, got %s", v.IncompleteKind()),
		Pos:     v.Pos(),
	}
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", &LoadError{
			Code:    ErrCodeBuildFailed,
			Message: fmt.Sprintf("%s must be a string", field),
			Pos:     fv.Pos(),
		}
	}
	return s, nil
}

// cueLoadError extracts the first position from CUE errors.
func cueLoadError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: ErrCodeBuildFailed, Message: err.Error()}
	}
	first := errs[0]
	le := &LoadError{Code: ErrCodeBuildFailed, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
