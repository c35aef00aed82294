package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownInputType is returned for a type name the editor does not know.
var ErrUnknownInputType = errors.New("unknown value type")

// FilePath represents a file system path.
type FilePath string

// InputType is the type a user asks raw text to be stored as.
type InputType string

const (
	// InputString stores the text as a string.
	InputString InputType = "string"
	// InputNumber parses the text as a number, falling back to 0.
	InputNumber InputType = "number"
	// InputBoolean stores true when the text reads "true".
	InputBoolean InputType = "boolean"
	// InputNull stores null regardless of the text.
	InputNull InputType = "null"
	// InputObject creates an empty object.
	InputObject InputType = "object"
	// InputArray creates an empty array.
	InputArray InputType = "array"
)

// InputTypes lists every InputType in the order the editor cycles through them.
var InputTypes = []InputType{
	InputString,
	InputNumber,
	InputBoolean,
	InputNull,
	InputObject,
	InputArray,
}

// ParseInputType maps a user-facing type name to an InputType. The empty
// name means string.
func ParseInputType(name string) (InputType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "string", "str":
		return InputString, nil
	case "number", "num":
		return InputNumber, nil
	case "boolean", "bool":
		return InputBoolean, nil
	case "null":
		return InputNull, nil
	case "object", "obj":
		return InputObject, nil
	case "array", "arr":
		return InputArray, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownInputType)
	}
}

// TakesText reports whether values of t are built from user text.
func (t InputType) TakesText() bool {
	switch t {
	case InputNull, InputObject, InputArray:
		return false
	default:
		return true
	}
}

// File describes where an open document lives.
type File struct {
	// Name is what the editor shows, e.g. "untitled.json".
	Name string
	// Path is empty until the document has been saved or was opened from disk.
	Path FilePath
}

// CreateArgs describes a new key or array element added under Parent.
type CreateArgs struct {
	Parent string
	Key    string
	Type   InputType
	Text   string
	// ApplyTemplate pre-fills a new object with the session's template fields.
	ApplyTemplate bool
}
