package literal

import (
	"fmt"
	"strconv"
)

// Kind names one translator.
type Kind string

const (
	KindBool       Kind = "bool"
	KindInts       Kind = "ints"
	KindAutoPad    Kind = "autopad"
	KindPrecision  Kind = "precision"
	KindPrecisions Kind = "precisions"
	KindRounding   Kind = "rounding"
)

// Kinds lists every translator in display order.
var Kinds = []Kind{KindBool, KindInts, KindAutoPad, KindPrecision, KindPrecisions, KindRounding}

// ParseKind validates a translator name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &TranslateError{
		Code:    ErrCodeUnknownKind,
		Token:   s,
		Index:   -1,
		Message: fmt.Sprintf("unknown kind %q: must be one of %v", s, Kinds),
	}
}

// IsList reports whether the kind takes zero or more arguments rather than
// exactly one.
func (k Kind) IsList() bool {
	return k == KindInts || k == KindPrecisions
}

// Vocabulary returns the accepted tokens of a table-backed kind in table
// order. List kinds report their element vocabulary; ints has none.
func Vocabulary(k Kind) []string {
	switch k {
	case KindBool:
		return []string{"true", "false"}
	case KindAutoPad:
		return []string{"explicit", "same_upper", "same_lower", "valid"}
	case KindPrecision, KindPrecisions:
		return []string{"FP16", "FP32"}
	case KindRounding:
		return []string{"floor", "ceil"}
	}
	return nil
}

// Render dispatches args to the translator named by kind.
func Render(kind Kind, args []string) (string, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return "", err
	}
	if !kind.IsList() && len(args) != 1 {
		return "", &TranslateError{
			Code:    ErrCodeArity,
			Kind:    kind,
			Index:   -1,
			Message: fmt.Sprintf("%s takes exactly one token, got %d", kind, len(args)),
		}
	}

	switch kind {
	case KindBool:
		return Bool(args[0])
	case KindInts:
		values, err := parseInts(args)
		if err != nil {
			return "", err
		}
		return IntList(values), nil
	case KindAutoPad:
		return AutoPad(args[0])
	case KindPrecision:
		return Precision(args[0])
	case KindPrecisions:
		return PrecisionList(args)
	case KindRounding:
		return RoundingType(args[0])
	}
	return "", fmt.Errorf("kind %q has no translator", kind)
}

func parseInts(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, &TranslateError{
				Code:    ErrCodeInvalidInteger,
				Kind:    KindInts,
				Token:   a,
				Index:   i,
				Message: fmt.Sprintf("invalid integer %q", a),
			}
		}
		values[i] = v
	}
	return values, nil
}
