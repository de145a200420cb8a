package adapter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/types"
)

func TestNewRequiresNode(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil schema node")
	}

	defer func() {
		if recovered := recover(); recovered == nil {
			t.Fatal("expected Must to panic for nil schema node")
		}
	}()
	Must(nil)
}

func TestTypeResolvesReference(t *testing.T) {
	node := &openapi.Schema{Ref: "#/components/schemas/Pet"}
	resolver := func(name string) (string, bool) {
		if name != "Pet" {
			t.Fatalf("resolver called with %q, want %q", name, "Pet")
		}
		return "other-doc.md", true
	}

	resolved := Must(node).Type(resolver)
	want := types.Ref{
		Document:    "other-doc.md",
		Placeholder: types.Object{Name: "Pet"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("ref type mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeKeepsSimpleNameWhenUnresolved(t *testing.T) {
	node := &openapi.Schema{Ref: "#/definitions/Order"}

	resolved := Must(node).Type(SameDocument)
	ref, ok := resolved.(types.Ref)
	if !ok {
		t.Fatalf("expected types.Ref, got %T", resolved)
	}
	if ref.Document != "" {
		t.Fatalf("expected local reference, got document %q", ref.Document)
	}
	if ref.Placeholder.Name != "Order" {
		t.Fatalf("placeholder name = %q, want %q", ref.Placeholder.Name, "Order")
	}
	if ref.Placeholder.Properties != nil {
		t.Fatal("placeholder must not carry properties")
	}
}

func TestTypeResolvesArray(t *testing.T) {
	node := &openapi.Schema{
		Type:  "array",
		Title: "tags",
		Items: &openapi.Schema{Type: "string"},
	}

	resolved := Must(node).Type(SameDocument)
	want := types.Array{
		Title: "tags",
		Items: types.Basic{Name: "string"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("array type mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeArrayWithoutItemsFallsBack(t *testing.T) {
	node := &openapi.Schema{Type: "array", Title: "broken"}

	resolved := Must(node).Type(SameDocument)
	want := types.Array{Title: "broken", Items: types.Object{}}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("array fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeResolvesMap(t *testing.T) {
	node := &openapi.Schema{
		Type:                 "object",
		Title:                "labels",
		AdditionalProperties: &openapi.Schema{Type: "boolean"},
	}

	resolved := Must(node).Type(SameDocument)
	want := types.Map{
		Title:  "labels",
		Values: types.Basic{Name: "boolean"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("map type mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeMapWithoutValueSchemaFallsBack(t *testing.T) {
	node := &openapi.Schema{
		Type:                        "object",
		Title:                       "freeform",
		AdditionalPropertiesAllowed: true,
	}

	resolved := Must(node).Type(SameDocument)
	want := types.Map{Title: "freeform", Values: types.Object{}}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("map fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeResolvesEnum(t *testing.T) {
	node := &openapi.Schema{
		Type:  "string",
		Title: "status",
		Enum:  []string{"placed", "approved", "delivered"},
	}

	resolved := Must(node).Type(SameDocument)
	want := types.Enum{
		Title:  "status",
		Values: []string{"placed", "approved", "delivered"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("enum type mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeResolvesStringFormats(t *testing.T) {
	withFormat := &openapi.Schema{Type: "string", Format: "date-time"}
	resolved := Must(withFormat).Type(SameDocument)
	want := types.Basic{Name: "string", Format: "date-time"}
	if diff := cmp.Diff(types.Type(want), resolved); diff != "" {
		t.Fatalf("string format mismatch (-want +got):\n%s", diff)
	}

	plain := &openapi.Schema{Type: "string"}
	resolved = Must(plain).Type(SameDocument)
	if diff := cmp.Diff(types.Type(types.Basic{Name: "string"}), resolved); diff != "" {
		t.Fatalf("plain string mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeResolvesObjectWithRawProperties(t *testing.T) {
	node := &openapi.Schema{
		Type:  "object",
		Title: "Pet",
		Properties: map[string]openapi.Schema{
			"name": {Type: "string"},
			"tag":  {Ref: "#/components/schemas/Tag"},
		},
	}

	resolved := Must(node).Type(SameDocument)
	object, ok := resolved.(types.Object)
	if !ok {
		t.Fatalf("expected types.Object, got %T", resolved)
	}
	if object.Name != "Pet" {
		t.Fatalf("object name = %q, want %q", object.Name, "Pet")
	}
	// Properties stay raw and unresolved; the renderer resolves each one.
	if diff := cmp.Diff(node.Properties, object.Properties); diff != "" {
		t.Fatalf("properties must pass through unresolved (-want +got):\n%s", diff)
	}
}

func TestTypeResidualPrimitives(t *testing.T) {
	cases := []struct {
		name string
		node *openapi.Schema
		want types.Basic
	}{
		{
			name: "integer with format",
			node: &openapi.Schema{Type: "integer", Format: "int64"},
			want: types.Basic{Name: "integer", Format: "int64"},
		},
		{
			name: "boolean",
			node: &openapi.Schema{Type: "boolean"},
			want: types.Basic{Name: "boolean"},
		},
		{
			name: "unknown tag surfaces as-is",
			node: &openapi.Schema{Type: "null"},
			want: types.Basic{Name: "null"},
		},
		{
			name: "missing tag",
			node: &openapi.Schema{},
			want: types.Basic{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolved := Must(tc.node).Type(SameDocument)
			if diff := cmp.Diff(types.Type(tc.want), resolved); diff != "" {
				t.Fatalf("residual type mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConstraintAccessors(t *testing.T) {
	minimum := decimal.RequireFromString("0.01")
	maximum := decimal.RequireFromString("99.99")
	minLength, maxLength := 1, 64

	node := &openapi.Schema{
		Type:             "number",
		Default:          "10",
		Minimum:          &minimum,
		Maximum:          &maximum,
		ExclusiveMinimum: true,
		MinLength:        &minLength,
		MaxLength:        &maxLength,
		Pattern:          `^\d+$`,
		ReadOnly:         true,
	}
	a := Must(node)

	if value, ok := a.DefaultValue(); !ok || value != "10" {
		t.Fatalf("DefaultValue = (%v, %v), want (10, true)", value, ok)
	}
	if value, ok := a.Min(); !ok || !value.Equal(minimum) {
		t.Fatalf("Min = (%v, %v), want (%v, true)", value, ok, minimum)
	}
	if value, ok := a.Max(); !ok || !value.Equal(maximum) {
		t.Fatalf("Max = (%v, %v), want (%v, true)", value, ok, maximum)
	}
	if value, ok := a.MinLength(); !ok || value != minLength {
		t.Fatalf("MinLength = (%d, %v), want (%d, true)", value, ok, minLength)
	}
	if value, ok := a.MaxLength(); !ok || value != maxLength {
		t.Fatalf("MaxLength = (%d, %v), want (%d, true)", value, ok, maxLength)
	}
	if value, ok := a.Pattern(); !ok || value != `^\d+$` {
		t.Fatalf("Pattern = (%q, %v), want pattern", value, ok)
	}
	if !a.ExclusiveMin() {
		t.Fatal("ExclusiveMin should be true")
	}
	if a.ExclusiveMax() {
		t.Fatal("ExclusiveMax should default to false")
	}
	if !a.ReadOnly() {
		t.Fatal("ReadOnly should be true")
	}
}

func TestConstraintAccessorsAbsent(t *testing.T) {
	a := Must(&openapi.Schema{Type: "string"})

	if _, ok := a.DefaultValue(); ok {
		t.Fatal("DefaultValue should be absent")
	}
	if _, ok := a.Min(); ok {
		t.Fatal("Min should be absent")
	}
	if _, ok := a.Max(); ok {
		t.Fatal("Max should be absent")
	}
	if _, ok := a.MinLength(); ok {
		t.Fatal("MinLength should be absent")
	}
	if _, ok := a.MaxLength(); ok {
		t.Fatal("MaxLength should be absent")
	}
	if _, ok := a.Pattern(); ok {
		t.Fatal("Pattern should be absent")
	}
	if a.ExclusiveMin() || a.ExclusiveMax() || a.ReadOnly() {
		t.Fatal("boolean flags should default to false")
	}
}
