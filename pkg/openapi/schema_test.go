package openapi

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimpleRef(t *testing.T) {
	cases := map[string]string{
		"#/components/schemas/Pet": "Pet",
		"#/definitions/Order":      "Order",
		"Category":                 "Category",
		"":                         "",
	}
	for ref, want := range cases {
		if got := SimpleRef(ref); got != want {
			t.Fatalf("SimpleRef(%q) = %q, want %q", ref, got, want)
		}
	}
}

func TestSchemaKindHelpers(t *testing.T) {
	boolean := Schema{Type: "boolean"}

	if !(Schema{Type: "array"}).IsArray() {
		t.Fatal("array kind not detected")
	}
	if !(Schema{Type: "object", AdditionalProperties: &boolean}).IsMap() {
		t.Fatal("map kind not detected")
	}
	if !(Schema{AdditionalProperties: &boolean}).IsMap() {
		t.Fatal("untyped node with value schema is a map")
	}
	if !(Schema{Type: "object", AdditionalPropertiesAllowed: true}).IsMap() {
		t.Fatal("free-form map not detected")
	}
	if (Schema{Type: "object"}).IsMap() {
		t.Fatal("object without value schema is not a map")
	}
	if !(Schema{Type: "object"}).IsObject() {
		t.Fatal("object kind not detected")
	}
	if !(Schema{Type: "string"}).IsString() {
		t.Fatal("string kind not detected")
	}
}

func TestSchemaClone(t *testing.T) {
	minimum := decimal.RequireFromString("1")
	length := 3
	original := Schema{
		Type:     "object",
		Enum:     []string{"a", "b"},
		Required: []string{"name"},
		Properties: map[string]Schema{
			"name": {Type: "string", MinLength: &length},
		},
		Items:                &Schema{Type: "string"},
		AdditionalProperties: &Schema{Type: "boolean"},
		Minimum:              &minimum,
	}

	clone := original.Clone()
	clone.Enum[0] = "changed"
	clone.Properties["name"] = Schema{Type: "integer"}
	*clone.Minimum = decimal.RequireFromString("9")
	clone.Items.Type = "integer"

	if original.Enum[0] != "a" {
		t.Fatal("enum values must be copied")
	}
	if original.Properties["name"].Type != "string" {
		t.Fatal("properties must be copied")
	}
	if original.Minimum.String() != "1" {
		t.Fatal("numeric bounds must be copied")
	}
	if original.Items.Type != "string" {
		t.Fatal("item schema must be copied")
	}
}
