package model

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	// Text is the token as written. Index segments keep it so a digit-only
	// object key can still be matched.
	Text    string
	Index   int
	IsIndex bool
}

// KeySegment returns a segment addressing an object key.
func KeySegment(key string) Segment {
	return Segment{Text: key}
}

// IndexSegment returns a segment addressing an array position.
func IndexSegment(i int) Segment {
	return Segment{Text: strconv.Itoa(i), Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + s.Text + "]"
	}

	return s.Text
}

// Path is an ordered sequence of segments. The empty Path is the document root.
type Path []Segment

// IsRoot reports whether p addresses the document root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent splits p into its ancestors and its final segment.
func (p Path) Parent() (Path, Segment) {
	if len(p) == 0 {
		return nil, Segment{}
	}

	return p[:len(p)-1], p[len(p)-1]
}

// HasPrefix reports whether p equals prefix or lies below it. Index segments
// compare by index, so "a[0]" and "a.0" match.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}

	for i, seg := range prefix {
		other := p[i]
		if seg.IsIndex && other.IsIndex {
			if seg.Index != other.Index {
				return false
			}

			continue
		}

		if seg.Text != other.Text {
			return false
		}
	}

	return true
}

// String renders p as "a.b[0].c".
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p {
		if !seg.IsIndex && i > 0 {
			sb.WriteByte('.')
		}

		sb.WriteString(seg.String())
	}

	return sb.String()
}
