// Package docgen renders reference documentation for OpenAPI documents. The
// root package re-exports the orchestrator entry points so most callers only
// need this import.
package docgen

import (
	"context"

	"github.com/oasdocs/go-docgen/pkg/adapter"
	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/orchestrator"
	"github.com/oasdocs/go-docgen/pkg/render"
)

// Request aliases the orchestrator request for convenience.
type Request = orchestrator.Request

// Options aliases the shared render options.
type Options = render.Options

// DocumentResolver maps definition names to the documents hosting them.
type DocumentResolver = adapter.DocumentResolver

// New constructs an orchestrator with the built-in pipeline.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the OpenAPI source and renders it with the named renderer.
// It is the simplest entry point for callers that just want the document
// bytes.
func Generate(ctx context.Context, source openapi.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader
// stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc openapi.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// WithLoaderOptions configures the built-in loader.
func WithLoaderOptions(options ...openapi.LoaderOption) orchestrator.Option {
	return orchestrator.WithLoaderOptions(options...)
}

// WithParserOptions configures the built-in parser.
func WithParserOptions(options ...openapi.ParserOption) orchestrator.Option {
	return orchestrator.WithParserOptions(options...)
}

// WithRenderer registers an additional renderer alongside the built-ins.
func WithRenderer(renderer render.Renderer) orchestrator.Option {
	return orchestrator.WithRenderer(renderer)
}
