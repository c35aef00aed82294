package domain

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/jsoned/internal/model"
)

// ParsePath splits text on '.', '[' and ']' into segments. Empty tokens are
// dropped, so "a..b", "a[].b" and stray separators collapse. Tokens made only
// of ASCII digits become index segments; everything else is a key.
func ParsePath(text string) m.Path {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '[' || r == ']'
	})

	path := make(m.Path, 0, len(tokens))
	for _, tok := range tokens {
		path = append(path, parseSegment(tok))
	}

	return path
}

func parseSegment(tok string) m.Segment {
	if !isDigits(tok) {
		return m.KeySegment(tok)
	}

	i, err := strconv.Atoi(tok)
	if err != nil {
		// Too large for an index; it can only ever name an object key.
		return m.KeySegment(tok)
	}

	return m.Segment{Text: tok, Index: i, IsIndex: true}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// JoinPath builds the path of key under parent the way the editor's create
// action does: "parent.key", or just "key" at the root.
func JoinPath(parent, key string) string {
	parent = strings.TrimSpace(parent)
	key = strings.TrimSpace(key)

	if parent == "" {
		return key
	}

	return parent + "." + key
}
