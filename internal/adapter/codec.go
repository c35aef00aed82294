package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/7sDream/geko"
	m "github.com/mouse-blink/jsoned/internal/model"
)

// ErrInvalidJSON wraps every decoding failure.
var ErrInvalidJSON = errors.New("invalid JSON")

// DefaultIndent matches the two-space layout documents are saved with.
const DefaultIndent = 2

// Decode parses JSON text into a Value, keeping object keys in document order.
// Numbers too large for float64 load as 0 like any other non-finite number.
func Decode(data []byte) (*m.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}

	// geko keeps object key order, which encoding/json's map decoding loses.
	raw, err := geko.JSONUnmarshal(data, geko.UseNumber(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err.Error())
	}

	return fromGeko(raw)
}

func fromGeko(raw any) (*m.Value, error) {
	switch v := raw.(type) {
	case nil:
		return m.Null(), nil
	case bool:
		return m.Bool(v), nil
	case float64:
		return m.Number(v), nil
	case json.Number:
		return parseNumber(v)
	case string:
		return m.String(v), nil
	case geko.ObjectItems:
		obj := m.NewObject()
		keys := v.Keys()
		vals := v.Values()

		for i := range keys {
			item, err := fromGeko(vals[i])
			if err != nil {
				return nil, err
			}

			obj.SetField(keys[i], item)
		}

		return obj, nil
	case geko.Array:
		arr := m.NewArray()

		for i := range v.Len() {
			item, err := fromGeko(v.Get(i))
			if err != nil {
				return nil, err
			}

			arr.Append(item)
		}

		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unexpected decoded type %T", ErrInvalidJSON, raw)
	}
}

// parseNumber converts a decoded number literal. Out of range literals parse
// to an infinity (or 0 on underflow), which m.Number maps to 0.
func parseNumber(n json.Number) (*m.Value, error) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: number %s: %s", ErrInvalidJSON, n, err.Error())
	}

	return m.Number(f), nil
}

// Encode renders v as JSON. indent > 0 puts every entry on its own line
// indented by that many spaces per level; indent <= 0 is compact.
func Encode(v *m.Value, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(toGeko(v)); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// toGeko converts v into geko's ordered containers so encoding keeps key order.
func toGeko(v *m.Value) any {
	switch v.Kind() {
	case m.KindBool:
		return v.AsBool()
	case m.KindNumber:
		return v.AsNumber()
	case m.KindString:
		return v.AsString()
	case m.KindArray:
		items := v.Items()
		list := geko.NewListWithCapacity[any](len(items))

		for _, item := range items {
			list.Append(toGeko(item))
		}

		return list
	case m.KindObject:
		entries := v.Object().Entries()
		pairs := geko.NewPairsWithCapacity[string, any](len(entries))

		for _, entry := range entries {
			pairs.Add(entry.Key, toGeko(entry.Value))
		}

		return pairs
	default:
		return nil
	}
}
