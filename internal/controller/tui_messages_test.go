package controller

import "testing"

func TestPathItem_FilterValue(t *testing.T) {
	item := pathItem{path: "user.addresses[0].city", typ: "string"}
	if got := item.FilterValue(); got != item.path {
		t.Fatalf("FilterValue() = %q, want %q", got, item.path)
	}
}
