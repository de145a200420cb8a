// Package render defines the renderer contract and registry. Renderers
// consume the parsed Description plus the adapter's type descriptors and
// examples; implementations live under internal/renderers.
package render

import (
	"context"

	"github.com/oasdocs/go-docgen/pkg/adapter"
	"github.com/oasdocs/go-docgen/pkg/openapi"
)

// Renderer converts a parsed document description into a byte representation
// (Markdown, AsciiDoc, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, description openapi.Description, options Options) ([]byte, error)
}

// Options carries per-render toggles shared by all renderers.
type Options struct {
	// GenerateMissingExamples synthesizes placeholder examples for nodes the
	// document leaves without one.
	GenerateMissingExamples bool

	// Resolver maps definition names to the document hosting them. Nil means
	// single-document output.
	Resolver adapter.DocumentResolver
}

// DocumentResolver returns the configured resolver, defaulting to
// same-document resolution.
func (o Options) DocumentResolver() adapter.DocumentResolver {
	if o.Resolver == nil {
		return adapter.SameDocument
	}
	return o.Resolver
}

// InterDocumentResolver maps every definition to its own sibling file,
// `<prefix><name><extension>`, for multi-file output layouts.
func InterDocumentResolver(prefix, extension string) adapter.DocumentResolver {
	return func(definitionName string) (string, bool) {
		if definitionName == "" {
			return "", false
		}
		return prefix + definitionName + extension, true
	}
}
