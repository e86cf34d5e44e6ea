package literal

import (
	"strconv"
	"strings"
)

// Bool translates an IR boolean word into a C++ bool literal.
func Bool(token string) (string, error) {
	switch token {
	case "true":
		return "true", nil
	case "false":
		return "false", nil
	}
	return "", unknownToken(KindBool, token)
}

// IntList renders integers as a braced initializer list, e.g. "{1, 2, 3}".
// An empty slice renders as "{}".
func IntList(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return braced(parts)
}

// AutoPad translates an IR auto_pad mode into an ngraph::op::PadType constant.
func AutoPad(token string) (string, error) {
	switch token {
	case "explicit":
		return "ngraph::op::PadType::EXPLICIT", nil
	case "same_upper":
		return "ngraph::op::PadType::SAME_UPPER", nil
	case "same_lower":
		return "ngraph::op::PadType::SAME_LOWER", nil
	case "valid":
		return "ngraph::op::PadType::VALID", nil
	}
	return "", unknownToken(KindAutoPad, token)
}

// Precision translates an IR precision name into an
// InferenceEngine::Precision constant.
func Precision(token string) (string, error) {
	switch token {
	case "FP16":
		return "InferenceEngine::Precision::FP16", nil
	case "FP32":
		return "InferenceEngine::Precision::FP32", nil
	}
	return "", unknownToken(KindPrecision, token)
}

// PrecisionList translates each precision in order and joins the results
// into a braced list. The first untranslatable element fails the whole call,
// with its position recorded in the error.
func PrecisionList(tokens []string) (string, error) {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		lit, err := Precision(tok)
		if err != nil {
			return "", atIndex(err, i)
		}
		parts[i] = lit
	}
	return braced(parts), nil
}

// RoundingType translates an IR rounding_type into an
// ngraph::op::RoundingType constant.
func RoundingType(token string) (string, error) {
	switch token {
	case "floor":
		return "ngraph::op::RoundingType::FLOOR", nil
	case "ceil":
		return "ngraph::op::RoundingType::CEIL", nil
	}
	return "", unknownToken(KindRounding, token)
}

func braced(parts []string) string {
	return "{" + strings.Join(parts, ", ") + "}"
}
