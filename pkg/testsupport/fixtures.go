// Package testsupport carries shared fixtures and assertion helpers for the
// package tests in this module.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/oasdocs/go-docgen/pkg/openapi"
)

// PetstoreDocument is a small but representative OpenAPI document covering
// primitives, enums, arrays, maps, and references.
const PetstoreDocument = `{
  "openapi": "3.0.0",
  "info": { "title": "Petstore", "version": "1.0.0" },
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List all pets",
        "responses": { "200": { "description": "ok" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "id": { "type": "integer", "format": "int64" },
          "name": { "type": "string" },
          "status": { "type": "string", "enum": ["available", "pending", "sold"] },
          "tags": { "type": "array", "items": { "type": "string" } },
          "labels": { "type": "object", "additionalProperties": { "type": "boolean" } },
          "category": { "$ref": "#/components/schemas/Category" }
        }
      },
      "Category": {
        "type": "object",
        "properties": { "name": { "type": "string" } }
      }
    }
  }
}`

// PetstoreFixture wraps PetstoreDocument in a Document.
func PetstoreFixture(t *testing.T) pkgopenapi.Document {
	t.Helper()
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("petstore.json"), []byte(PetstoreDocument))
}

// LoadDocument reads a fixture file and builds an openapi.Document using a
// file source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustEqual fails the test with a readable diff when want and got differ.
func MustEqual(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
