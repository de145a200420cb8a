// Package adapter inspects a single schema node: it classifies the node into
// a type descriptor, produces a display example for it, and exposes its
// constraint metadata. Everything here is a pure function of the node and the
// supplied collaborators; nothing is cached between calls.
package adapter

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/types"
)

// DocumentResolver maps a definition's simple name to the document that hosts
// it. A false return means the definition lives in the current document (or
// is unresolved) and references should stay local.
type DocumentResolver func(definitionName string) (string, bool)

// SameDocument is the resolver for single-file output: every definition is
// local.
func SameDocument(string) (string, bool) {
	return "", false
}

// Adapter wraps one schema node for inspection.
type Adapter struct {
	node *openapi.Schema
}

// New wraps a schema node. The node is required; a nil node is a programming
// error surfaced immediately rather than on first use.
func New(node *openapi.Schema) (*Adapter, error) {
	if node == nil {
		return nil, errors.New("adapter: schema node is required")
	}
	return &Adapter{node: node}, nil
}

// Must panics when the node is nil. Useful for recursion over nodes already
// known to exist.
func Must(node *openapi.Schema) *Adapter {
	a, err := New(node)
	if err != nil {
		panic(err)
	}
	return a
}

// Schema returns the wrapped node.
func (a *Adapter) Schema() *openapi.Schema {
	return a.node
}

// Type classifies the node into exactly one descriptor variant. The branch
// order matters: a node can satisfy several structural tests at once (a map
// is also an object, a reference may carry a type tag), so references win
// first, then arrays, maps, strings, objects, and finally the residual
// primitives.
//
// References are never followed: the descriptor carries only the simple name
// and the resolver's location, leaving full resolution to the renderer. This
// also bounds recursion for cyclic documents.
func (a *Adapter) Type(resolve DocumentResolver) types.Type {
	node := a.node
	switch {
	case node.Ref != "":
		name := node.SimpleRef()
		document, _ := resolve(name)
		return types.Ref{
			Document:    document,
			Placeholder: types.Object{Name: name},
		}

	case node.IsArray():
		if node.Items == nil {
			// Workaround for parsers that drop item schemas on composed
			// models; degrade to an anonymous object instead of failing.
			return types.Array{Title: node.Title, Items: types.Object{}}
		}
		return types.Array{
			Title: node.Title,
			Items: Must(node.Items).Type(resolve),
		}

	case node.IsMap():
		if node.AdditionalProperties == nil {
			// Free-form maps name no value schema; degrade to an anonymous
			// object the same way value-less arrays do.
			return types.Map{Title: node.Title, Values: types.Object{}}
		}
		return types.Map{
			Title:  node.Title,
			Values: Must(node.AdditionalProperties).Type(resolve),
		}

	case node.IsString():
		if len(node.Enum) > 0 {
			return types.Enum{Title: node.Title, Values: node.Enum}
		}
		return types.Basic{Name: node.Type, Title: node.Title, Format: node.Format}

	case node.IsObject():
		return types.Object{Name: node.Title, Properties: node.Properties}

	default:
		// Residual primitives (integer, number, boolean) and unrecognized
		// type tags surface as-is; upstream documents are frequently
		// imperfect and a raw tag beats an aborted document.
		return types.Basic{Name: node.Type, Title: node.Title, Format: node.Format}
	}
}

// DefaultValue returns the node's default value, if set.
func (a *Adapter) DefaultValue() (any, bool) {
	if a.node.Default == nil {
		return nil, false
	}
	return a.node.Default, true
}

// MinLength returns the node's minimum length constraint, if set.
func (a *Adapter) MinLength() (int, bool) {
	if a.node.MinLength == nil {
		return 0, false
	}
	return *a.node.MinLength, true
}

// MaxLength returns the node's maximum length constraint, if set.
func (a *Adapter) MaxLength() (int, bool) {
	if a.node.MaxLength == nil {
		return 0, false
	}
	return *a.node.MaxLength, true
}

// Pattern returns the node's regular-expression constraint, if set.
func (a *Adapter) Pattern() (string, bool) {
	if a.node.Pattern == "" {
		return "", false
	}
	return a.node.Pattern, true
}

// Min returns the node's numeric minimum, if set.
func (a *Adapter) Min() (decimal.Decimal, bool) {
	if a.node.Minimum == nil {
		return decimal.Decimal{}, false
	}
	return *a.node.Minimum, true
}

// Max returns the node's numeric maximum, if set.
func (a *Adapter) Max() (decimal.Decimal, bool) {
	if a.node.Maximum == nil {
		return decimal.Decimal{}, false
	}
	return *a.node.Maximum, true
}

// ExclusiveMin reports whether the minimum bound is exclusive.
func (a *Adapter) ExclusiveMin() bool {
	return a.node.ExclusiveMinimum
}

// ExclusiveMax reports whether the maximum bound is exclusive.
func (a *Adapter) ExclusiveMax() bool {
	return a.node.ExclusiveMaximum
}

// ReadOnly reports whether the node is marked read-only.
func (a *Adapter) ReadOnly() bool {
	return a.node.ReadOnly
}
