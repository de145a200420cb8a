package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oasdocs/go-docgen/pkg/openapi"
)

// CrossReferencer renders a cross-reference placeholder for a `$ref` target.
// markup.Builder satisfies it; the synthesizer needs nothing else from the
// document context.
type CrossReferencer interface {
	CrossReference(ref string) string
}

// Example returns the display example for the node. An author-supplied
// example always wins, verbatim. Otherwise maps prefer their value-schema's
// example, and when generateMissing is set a canonical stand-in is
// synthesized: a single-entry map, a single-element array, or a primitive
// placeholder. The second return is false when no example is available.
func (a *Adapter) Example(generateMissing bool, xref CrossReferencer) (any, bool) {
	node := a.node
	switch {
	case node.Example != nil:
		return node.Example, true

	case node.IsMap():
		values := node.AdditionalProperties
		if values != nil && values.Example != nil {
			return values.Example, true
		}
		if generateMissing {
			return map[string]any{"string": GenerateExample(values, xref)}, true
		}

	case node.IsArray():
		if generateMissing {
			return []any{GenerateExample(node.Items, xref)}, true
		}

	case generateMissing:
		return GenerateExample(node, xref), true
	}

	// The node's own example is re-checked as the safety fallback; it is nil
	// on every path that reaches here.
	if node.Example != nil {
		return node.Example, true
	}
	return nil, false
}

// RefPlaceholder is a synthesized cross-reference example. It carries
// ready-made markup, so renderers emit it verbatim while every other string
// example renders as literal text.
type RefPlaceholder string

// GenerateExample synthesizes a canonical placeholder value for a schema
// node. It is total: every branch has a concrete fallback, ending with the
// raw type tag itself.
func GenerateExample(node *openapi.Schema, xref CrossReferencer) any {
	if node == nil {
		node = &openapi.Schema{}
	}
	if node.Ref != "" {
		if xref != nil {
			return RefPlaceholder(xref.CrossReference(node.Ref))
		}
		return node.SimpleRef()
	}

	switch node.Type {
	case "integer":
		return 0
	case "number":
		return 0.0
	case "boolean":
		return true
	case "string":
		return "string"
	case "array":
		return []any{GenerateExample(node.Items, xref)}
	default:
		return node.Type
	}
}

// ConversionError reports a raw example value that cannot be coerced into
// its declared type. It is never recovered internally.
type ConversionError struct {
	Value string
	Type  string
	cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("value %q cannot be converted to %q", e.Value, e.Type)
}

func (e *ConversionError) Unwrap() error {
	return e.cause
}

// ConvertExample coerces a raw example value into the declared target type.
// Nil stays nil and non-string values pass through untouched; strings parse
// according to the target type. Only integer and number targets can fail,
// with a *ConversionError carrying the offending value.
func ConvertExample(value any, targetType string) (any, error) {
	if value == nil {
		return nil, nil
	}
	raw, ok := value.(string)
	if !ok {
		return value, nil
	}

	switch targetType {
	case "integer":
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: targetType, cause: err}
		}
		return parsed, nil
	case "number":
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ConversionError{Value: raw, Type: targetType, cause: err}
		}
		return parsed, nil
	case "boolean":
		// Boolean literal rules: "true" in any case is true, everything
		// else is false. Never fails.
		return strings.EqualFold(raw, "true"), nil
	default:
		return raw, nil
	}
}
