package openapi

import "errors"

// Description is the parsed view of a document that renderers consume:
// top-level metadata plus the named schema definitions and operations, both
// in a deterministic order.
type Description struct {
	Title       string
	Version     string
	Description string
	Definitions []Definition
	Operations  []Operation
}

// Definition pairs a component schema with its name from
// `components/schemas` (or Swagger 2.0 `definitions`).
type Definition struct {
	Name   string
	Schema Schema
}

// Definition returns the named definition, if present.
func (d Description) Definition(name string) (Definition, bool) {
	for _, def := range d.Definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Operation models the subset of OpenAPI operation metadata needed for the
// paths overview of a reference document.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Deprecated  bool
}

// NewOperation validates core fields before use.
func NewOperation(id, method, path string) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{ID: id, Method: method, Path: path}, nil
}
