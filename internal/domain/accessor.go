package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/jsoned/internal/model"
)

var (
	// ErrEmptyPath is returned when an operation needs at least one segment.
	ErrEmptyPath = errors.New("path is empty")
	// ErrNotContainer is returned when writing below a scalar root.
	ErrNotContainer = errors.New("document root is not an object or array")
	// ErrKeyOnArray is returned when a non-numeric segment addresses an array.
	ErrKeyOnArray = errors.New("key segment cannot address an array")
	// ErrIndexTooFar is returned when a write would pad an array with more
	// than MaxIndexGap nulls.
	ErrIndexTooFar = errors.New("index too far past the end of the array")
)

// MaxIndexGap is how many null elements one write may insert before the
// written index.
const MaxIndexGap = 10000

// Get resolves path from root. The boolean is false when nothing exists at
// path; a stored null is reported as found.
func Get(root *m.Value, path m.Path) (*m.Value, bool) {
	cur := root

	for _, seg := range path {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

// Set stores value at path, creating missing or scalar ancestors. A created
// ancestor is an array when the segment after it is an index and an object
// otherwise. Scalars found on the way are replaced.
func Set(root *m.Value, path m.Path, value *m.Value) error {
	if path.IsRoot() {
		return ErrEmptyPath
	}

	if !root.IsContainer() {
		return ErrNotContainer
	}

	if err := checkGaps(root, path); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}

	ancestors, last := path.Parent()
	cur := root

	for i, seg := range ancestors {
		following := last
		if i+1 < len(ancestors) {
			following = ancestors[i+1]
		}

		next, ok := child(cur, seg)
		if !ok || !next.IsContainer() {
			next = newContainerFor(following)
			if err := assign(cur, seg, next); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}

		cur = next
	}

	if err := assign(cur, last, value); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}

	return nil
}

// Delete removes the value at path. It reports false for the root, for any
// ancestor that cannot be walked, for an out-of-range index and for a missing
// key. Removing an array element shifts the following elements left.
func Delete(root *m.Value, path m.Path) bool {
	if path.IsRoot() {
		return false
	}

	ancestors, last := path.Parent()

	parent, ok := Get(root, ancestors)
	if !ok {
		return false
	}

	switch parent.Kind() {
	case m.KindArray:
		return last.IsIndex && parent.RemoveIndex(last.Index)
	case m.KindObject:
		return parent.DeleteField(last.Text)
	default:
		return false
	}
}

// child looks seg up in cur. Objects match on the segment text, so "007"
// still finds the key "007"; arrays only accept index segments.
func child(cur *m.Value, seg m.Segment) (*m.Value, bool) {
	switch cur.Kind() {
	case m.KindObject:
		return cur.Field(seg.Text)
	case m.KindArray:
		if !seg.IsIndex {
			return nil, false
		}

		return cur.Index(seg.Index)
	default:
		return nil, false
	}
}

// checkGaps rejects a write whose index segments lie more than MaxIndexGap
// past the end of their array, before anything is modified. Arrays that Set
// would create start empty.
func checkGaps(root *m.Value, path m.Path) error {
	cur := root

	for _, seg := range path {
		length := 0
		if cur != nil {
			if cur.Kind() != m.KindArray {
				length = -1
			} else {
				length = cur.Len()
			}
		}

		if length >= 0 && seg.IsIndex && seg.Index-length > MaxIndexGap {
			return fmt.Errorf("[%d] with length %d: %w", seg.Index, length, ErrIndexTooFar)
		}

		if cur == nil {
			continue
		}

		next, ok := child(cur, seg)
		if !ok || !next.IsContainer() {
			next = nil
		}

		cur = next
	}

	return nil
}

func assign(container *m.Value, seg m.Segment, value *m.Value) error {
	switch container.Kind() {
	case m.KindObject:
		container.SetField(seg.Text, value)
		return nil
	case m.KindArray:
		if !seg.IsIndex {
			return fmt.Errorf("%q: %w", seg.Text, ErrKeyOnArray)
		}

		container.SetIndex(seg.Index, value)

		return nil
	default:
		return ErrNotContainer
	}
}

func newContainerFor(next m.Segment) *m.Value {
	if next.IsIndex {
		return m.NewArray()
	}

	return m.NewObject()
}
