package openapi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Schema is the neutral schema node produced by the parser. It mirrors the
// OpenAPI schema object shape closely enough for documentation purposes while
// staying independent of the parsing backend. Nodes are treated as immutable
// once built; nothing downstream mutates them.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Description string

	Enum       []string
	Required   []string
	Properties map[string]Schema

	// Items carries the element schema for arrays; AdditionalProperties
	// carries the shared value schema for string-keyed dictionaries. Either
	// may be nil on imperfect documents. AdditionalPropertiesAllowed marks a
	// free-form map (`additionalProperties: true`) that names no value
	// schema.
	Items                       *Schema
	AdditionalProperties        *Schema
	AdditionalPropertiesAllowed bool

	Default any
	Example any

	// Numeric bounds are kept as exact decimals so documented limits do not
	// drift through float64 representation.
	Minimum          *decimal.Decimal
	Maximum          *decimal.Decimal
	ExclusiveMinimum bool
	ExclusiveMaximum bool

	MinLength *int
	MaxLength *int
	Pattern   string

	ReadOnly bool
}

// IsArray reports whether the node describes a homogeneous sequence.
func (s Schema) IsArray() bool {
	return s.Type == "array"
}

// IsMap reports whether the node describes a string-keyed dictionary: an
// object (or untyped) node whose values share one additional-properties
// schema, or a free-form map that allows additional properties without
// naming one.
func (s Schema) IsMap() bool {
	if s.AdditionalProperties == nil && !s.AdditionalPropertiesAllowed {
		return false
	}
	return s.Type == "object" || s.Type == ""
}

// IsString reports whether the node is a string-typed scalar.
func (s Schema) IsString() bool {
	return s.Type == "string"
}

// IsObject reports whether the node describes a structured record.
func (s Schema) IsObject() bool {
	return s.Type == "object"
}

// SimpleRef returns the final path segment of the node's reference, which is
// the definition name for both `#/definitions/Name` and
// `#/components/schemas/Name` style pointers. Empty when the node carries no
// reference.
func (s Schema) SimpleRef() string {
	return SimpleRef(s.Ref)
}

// SimpleRef extracts the simple definition name from a `$ref` pointer.
func SimpleRef(ref string) string {
	if ref == "" {
		return ""
	}
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// Clone creates a deep copy of the schema tree to avoid accidental mutation.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Enum) > 0 {
		cloned.Enum = append([]string(nil), s.Enum...)
	}
	if len(s.Required) > 0 {
		cloned.Required = append([]string(nil), s.Required...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		cloned.Items = &items
	}
	if s.AdditionalProperties != nil {
		values := s.AdditionalProperties.Clone()
		cloned.AdditionalProperties = &values
	}
	if s.Minimum != nil {
		minimum := *s.Minimum
		cloned.Minimum = &minimum
	}
	if s.Maximum != nil {
		maximum := *s.Maximum
		cloned.Maximum = &maximum
	}
	if s.MinLength != nil {
		length := *s.MinLength
		cloned.MinLength = &length
	}
	if s.MaxLength != nil {
		length := *s.MaxLength
		cloned.MaxLength = &length
	}
	return cloned
}
