package openapi

import "context"

// Parser normalises OpenAPI documents into the Description consumed by
// downstream packages.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Description, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ValidateDocument controls whether the parser validates the document
	// before extraction. Defaults to true for full documents.
	ValidateDocument bool

	// AllowPartialDocuments gates component-only inputs that declare no
	// paths. Defaults to false.
	AllowPartialDocuments bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithDocumentValidation toggles up-front document validation.
func WithDocumentValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ValidateDocument = enabled
	}
}

// WithPartialDocuments toggles support for component-only documents.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ValidateDocument:      true,
		AllowPartialDocuments: false,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
