package domain

import (
	"testing"

	m "github.com/mouse-blink/jsoned/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		text string
		want m.Path
	}{
		{name: "empty", text: "", want: m.Path{}},
		{name: "single key", text: "user", want: m.Path{m.KeySegment("user")}},
		{
			name: "dotted keys",
			text: "user.address.city",
			want: m.Path{m.KeySegment("user"), m.KeySegment("address"), m.KeySegment("city")},
		},
		{
			name: "bracket index",
			text: "user.addresses[0].city",
			want: m.Path{m.KeySegment("user"), m.KeySegment("addresses"), m.IndexSegment(0), m.KeySegment("city")},
		},
		{
			name: "dotted index",
			text: "items.2",
			want: m.Path{m.KeySegment("items"), m.IndexSegment(2)},
		},
		{
			name: "nested indices",
			text: "[1][0]",
			want: m.Path{m.IndexSegment(1), m.IndexSegment(0)},
		},
		{
			name: "empty tokens collapse",
			text: ".a..b[].c.",
			want: m.Path{m.KeySegment("a"), m.KeySegment("b"), m.KeySegment("c")},
		},
		{
			name: "signed and mixed tokens stay keys",
			text: "-1.1a.+2",
			want: m.Path{m.KeySegment("-1"), m.KeySegment("1a"), m.KeySegment("+2")},
		},
		{
			name: "overflowing digits stay keys",
			text: "n.99999999999999999999999",
			want: m.Path{m.KeySegment("n"), m.KeySegment("99999999999999999999999")},
		},
		{
			name: "spaces are part of keys",
			text: "first name",
			want: m.Path{m.KeySegment("first name")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePath(tt.text))
		})
	}
}

func TestParsePath_LeadingZerosKeepText(t *testing.T) {
	path := ParsePath("007")

	assert.Len(t, path, 1)
	assert.True(t, path[0].IsIndex)
	assert.Equal(t, 7, path[0].Index)
	assert.Equal(t, "007", path[0].Text)
}

func TestParsePath_StringRoundTrip(t *testing.T) {
	for _, text := range []string{"a", "a.b", "a[0].b", "[2]", "a[0][1]"} {
		assert.Equal(t, text, ParsePath(text).String())
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "name", JoinPath("", "name"))
	assert.Equal(t, "name", JoinPath("  ", " name "))
	assert.Equal(t, "user.name", JoinPath("user", "name"))
	assert.Equal(t, "items.0", JoinPath("items", "0"))
}
