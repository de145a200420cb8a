package types

import (
	"testing"

	"github.com/oasdocs/go-docgen/pkg/markup"
)

func TestDisplaySchema(t *testing.T) {
	b := markup.Markdown()

	cases := []struct {
		name string
		typ  Type
		want string
	}{
		{name: "basic", typ: Basic{Name: "integer"}, want: "integer"},
		{name: "basic with format", typ: Basic{Name: "string", Format: "date-time"}, want: "string (date-time)"},
		{name: "basic title wins", typ: Basic{Name: "string", Title: "ISO date", Format: "date"}, want: "ISO date"},
		{name: "enum", typ: Enum{Values: []string{"placed", "approved"}}, want: "enum (placed, approved)"},
		{name: "object", typ: Object{Name: "Pet"}, want: "object"},
		{name: "array", typ: Array{Items: Basic{Name: "string"}}, want: "< string > array"},
		{name: "array fallback", typ: Array{}, want: "< object > array"},
		{name: "map", typ: Map{Values: Basic{Name: "boolean"}}, want: "< string, boolean > map"},
		{name: "nested", typ: Array{Items: Map{Values: Basic{Name: "integer"}}}, want: "< < string, integer > map > array"},
		{name: "local ref", typ: Ref{Placeholder: Object{Name: "Pet"}}, want: "[Pet](#pet)"},
		{name: "cross-document ref", typ: Ref{Document: "definitions.md", Placeholder: Object{Name: "Pet"}}, want: "[Pet](definitions.md#pet)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.DisplaySchema(b); got != tc.want {
				t.Fatalf("DisplaySchema = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	pairs := map[Kind]Type{
		KindBasic:  Basic{},
		KindArray:  Array{},
		KindMap:    Map{},
		KindEnum:   Enum{},
		KindObject: Object{},
		KindRef:    Ref{},
	}
	for want, typ := range pairs {
		if got := typ.Kind(); got != want {
			t.Fatalf("Kind() = %q, want %q", got, want)
		}
	}
}
