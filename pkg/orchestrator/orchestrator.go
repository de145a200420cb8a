// Package orchestrator wires the loader, parser, and renderer stages into a
// single Generate call. Every stage is swappable through options.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalloader "github.com/oasdocs/go-docgen/internal/openapi/loader"
	internalparser "github.com/oasdocs/go-docgen/internal/openapi/parser"
	"github.com/oasdocs/go-docgen/internal/renderers/document"
	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/render"
)

// DefaultRenderer is used when a request does not name one.
const DefaultRenderer = "markdown"

// Orchestrator owns the pipeline stages.
type Orchestrator struct {
	loader   openapi.Loader
	parser   openapi.Parser
	registry *render.Registry
}

// Option mutates the orchestrator during construction.
type Option func(*Orchestrator)

// WithLoader swaps the document loader.
func WithLoader(loader openapi.Loader) Option {
	return func(o *Orchestrator) {
		if loader != nil {
			o.loader = loader
		}
	}
}

// WithLoaderOptions rebuilds the default loader from options.
func WithLoaderOptions(options ...openapi.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loader = internalloader.New(openapi.NewLoaderOptions(options...))
	}
}

// WithParser swaps the document parser.
func WithParser(parser openapi.Parser) Option {
	return func(o *Orchestrator) {
		if parser != nil {
			o.parser = parser
		}
	}
}

// WithParserOptions rebuilds the default parser from options.
func WithParserOptions(options ...openapi.ParserOption) Option {
	return func(o *Orchestrator) {
		o.parser = internalparser.New(openapi.NewParserOptions(options...))
	}
}

// WithRenderer registers an additional renderer. Registration failures
// surface on first use through Generate.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		_ = o.registry.Register(renderer)
	}
}

// New constructs an orchestrator with the built-in loader, parser, and the
// markdown/asciidoc renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		loader:   internalloader.New(openapi.NewLoaderOptions()),
		parser:   internalparser.New(openapi.NewParserOptions()),
		registry: render.NewRegistry(),
	}
	o.registry.MustRegister(document.Markdown())
	o.registry.MustRegister(document.AsciiDoc())

	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	return o.registry.List()
}

// Request describes one generation run. Either Source or Document must be
// set; Document bypasses the loader stage.
type Request struct {
	Source   openapi.Source
	Document *openapi.Document
	Renderer string
	Options  render.Options
}

// Generate runs the pipeline and returns the rendered document.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	description, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse: %w", err)
	}

	name := req.Renderer
	if name == "" {
		name = DefaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	out, err := renderer.Render(ctx, description, req.Options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return out, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (openapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return openapi.Document{}, errors.New("orchestrator: request needs a source or a document")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return openapi.Document{}, fmt.Errorf("orchestrator: load: %w", err)
	}
	return doc, nil
}
