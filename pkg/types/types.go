// Package types defines the closed set of type descriptors a schema node
// resolves into. Descriptors are plain data created fresh per resolution;
// display helpers render them through a markup builder without touching the
// source document again.
package types

import (
	"fmt"
	"strings"

	"github.com/oasdocs/go-docgen/pkg/markup"
	"github.com/oasdocs/go-docgen/pkg/openapi"
)

// Kind discriminates the descriptor variants.
type Kind string

const (
	KindBasic  Kind = "basic"
	KindArray  Kind = "array"
	KindMap    Kind = "map"
	KindEnum   Kind = "enum"
	KindObject Kind = "object"
	KindRef    Kind = "ref"
)

// Type is the common surface of every descriptor variant. A descriptor is
// exactly one variant; DisplaySchema renders the inline type column of a
// property table.
type Type interface {
	Kind() Kind
	DisplaySchema(b markup.Builder) string
}

// Basic describes a primitive scalar.
type Basic struct {
	Name   string
	Title  string
	Format string
}

func (Basic) Kind() Kind { return KindBasic }

func (t Basic) DisplaySchema(markup.Builder) string {
	if t.Title != "" {
		return t.Title
	}
	if t.Format != "" {
		return fmt.Sprintf("%s (%s)", t.Name, t.Format)
	}
	return t.Name
}

// Array describes a homogeneous sequence.
type Array struct {
	Title string
	Items Type
}

func (Array) Kind() Kind { return KindArray }

func (t Array) DisplaySchema(b markup.Builder) string {
	items := "object"
	if t.Items != nil {
		items = t.Items.DisplaySchema(b)
	}
	return fmt.Sprintf("< %s > array", items)
}

// Map describes a string-keyed dictionary whose values share one schema.
type Map struct {
	Title  string
	Values Type
}

func (Map) Kind() Kind { return KindMap }

func (t Map) DisplaySchema(b markup.Builder) string {
	values := "object"
	if t.Values != nil {
		values = t.Values.DisplaySchema(b)
	}
	return fmt.Sprintf("< string, %s > map", values)
}

// Enum describes a closed set of literal strings. Values keep the order they
// carry in the source document.
type Enum struct {
	Title  string
	Values []string
}

func (Enum) Kind() Kind { return KindEnum }

func (t Enum) DisplaySchema(markup.Builder) string {
	return fmt.Sprintf("enum (%s)", strings.Join(t.Values, ", "))
}

// Object describes a structured record. Properties are carried raw and
// unresolved: resolving each property is the renderer's job, and a reference
// placeholder carries no properties at all.
type Object struct {
	Name       string
	Properties map[string]openapi.Schema
}

func (Object) Kind() Kind { return KindObject }

func (t Object) DisplaySchema(markup.Builder) string {
	return "object"
}

// Ref describes a reference to a named schema defined elsewhere. Document is
// the cross-document location supplied by the resolver collaborator, empty
// for same-document references. The placeholder carries only the reference's
// simple name; the target is never resolved here, which keeps reference
// cycles from recursing.
type Ref struct {
	Document    string
	Placeholder Object
}

func (Ref) Kind() Kind { return KindRef }

func (t Ref) DisplaySchema(b markup.Builder) string {
	name := t.Placeholder.Name
	if t.Document == "" {
		return b.CrossReference(name)
	}
	return b.CrossReferenceTo(t.Document, name, name)
}
