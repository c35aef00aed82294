package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "github.com/mouse-blink/jsoned/internal/model"
)

// numberPrefix matches the longest leading decimal literal, the same prefix a
// lenient float parser would accept.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// CoerceInput turns raw text into a value of the requested type. Bad input
// never fails: numbers without a numeric prefix become 0 and anything other
// than "true" is false.
func CoerceInput(text string, typ m.InputType) (*m.Value, error) {
	switch typ {
	case m.InputString, "":
		return m.String(stripQuotes(text)), nil
	case m.InputNumber:
		return m.Number(parseLeadingFloat(text)), nil
	case m.InputBoolean:
		return m.Bool(strings.EqualFold(strings.TrimSpace(text), "true")), nil
	case m.InputNull:
		return m.Null(), nil
	case m.InputObject:
		return m.NewObject(), nil
	case m.InputArray:
		return m.NewArray(), nil
	default:
		return nil, fmt.Errorf("%q: %w", typ, m.ErrUnknownInputType)
	}
}

// TypeOf returns the display name of v's type.
func TypeOf(v *m.Value) string {
	return v.Kind().String()
}

func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}

	return s
}

func parseLeadingFloat(s string) float64 {
	prefix := numberPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}

	// On overflow ParseFloat returns ±Inf with an error; m.Number maps that to 0.
	f, _ := strconv.ParseFloat(prefix, 64)

	return f
}
