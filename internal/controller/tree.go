package controller

import (
	"fmt"
	"strconv"

	m "github.com/mouse-blink/jsoned/internal/model"
)

// treeRow is one visible line of the document tree.
type treeRow struct {
	path     string
	parent   string
	label    string
	depth    int
	value    *m.Value
	expanded bool
}

// hasChildren reports whether the row can be folded.
func (r treeRow) hasChildren() bool {
	return r.value.IsContainer() && r.value.Len() > 0
}

// flattenTree lists the rows of doc in display order, skipping the children
// of every path in collapsed. The root itself is only listed when it is a
// scalar.
func flattenTree(doc *m.Value, collapsed map[string]bool) []treeRow {
	if !doc.IsContainer() {
		return []treeRow{{label: "$", value: doc}}
	}

	var rows []treeRow

	appendChildren(&rows, doc, "", 0, collapsed)

	return rows
}

func appendChildren(rows *[]treeRow, parent *m.Value, parentPath string, depth int, collapsed map[string]bool) {
	visit := func(path, label string, v *m.Value) {
		row := treeRow{
			path:     path,
			parent:   parentPath,
			label:    label,
			depth:    depth,
			value:    v,
			expanded: !collapsed[path],
		}
		*rows = append(*rows, row)

		if row.hasChildren() && row.expanded {
			appendChildren(rows, v, path, depth+1, collapsed)
		}
	}

	switch parent.Kind() {
	case m.KindObject:
		for _, e := range parent.Object().Entries() {
			visit(objectChildPath(parentPath, e.Key), e.Key, e.Value)
		}
	case m.KindArray:
		for i, item := range parent.Items() {
			visit(arrayChildPath(parentPath, i), "["+strconv.Itoa(i)+"]", item)
		}
	default:
	}
}

func objectChildPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}

func arrayChildPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// containerPaths returns the path of every non-empty container below doc.
func containerPaths(doc *m.Value) []string {
	var paths []string

	for _, row := range flattenTree(doc, nil) {
		if row.hasChildren() {
			paths = append(paths, row.path)
		}
	}

	return paths
}

// formatScalar renders a value inline: strings quoted, containers as their
// entry counts.
func formatScalar(v *m.Value) string {
	switch v.Kind() {
	case m.KindNull:
		return "null"
	case m.KindBool:
		return strconv.FormatBool(v.AsBool())
	case m.KindNumber:
		return strconv.FormatFloat(v.AsNumber(), 'f', -1, 64)
	case m.KindString:
		return strconv.Quote(v.AsString())
	case m.KindArray:
		return fmt.Sprintf("[%d]", v.Len())
	case m.KindObject:
		return fmt.Sprintf("{%d}", v.Len())
	default:
		return ""
	}
}

// editText returns the text that reproduces a scalar when typed back in.
// Null and containers yield "".
func editText(v *m.Value) string {
	switch v.Kind() {
	case m.KindBool:
		return strconv.FormatBool(v.AsBool())
	case m.KindNumber:
		return strconv.FormatFloat(v.AsNumber(), 'f', -1, 64)
	case m.KindString:
		return v.AsString()
	default:
		return ""
	}
}
