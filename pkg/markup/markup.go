// Package markup provides minimal document builders for the markup flavors
// the renderers emit. Builders are stateless; every method returns the
// produced fragment so callers stay in control of assembly.
package markup

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// Flavor names a markup dialect.
type Flavor string

const (
	FlavorMarkdown Flavor = "markdown"
	FlavorAsciiDoc Flavor = "asciidoc"
)

// Builder renders markup fragments for one flavor. The adapter package only
// relies on CrossReference; renderers use the full surface.
type Builder interface {
	Flavor() Flavor

	// Anchor normalises a free-form name into a stable anchor identifier.
	Anchor(name string) string

	// CrossReference renders a same-document reference for a raw `$ref`
	// pointer or a plain definition name.
	CrossReference(ref string) string

	// CrossReferenceTo renders a reference into another document. An empty
	// document degrades to a same-document reference.
	CrossReferenceTo(document, anchor, text string) string

	Heading(level int, text string) string
	BoldText(text string) string
	LiteralText(text string) string
	Table(headers []string, rows [][]string) string
}

var (
	sanitizeOnce   sync.Once
	sanitizePolicy *bluemonday.Policy
)

// SanitizedText strips any author-supplied HTML from descriptions before they
// are embedded into generated documents, then restores plain-text entities.
func SanitizedText(text string) string {
	sanitizeOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	cleaned := sanitizePolicy.Sanitize(text)
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}

// normalizeAnchor lowercases the name and collapses every non-alphanumeric
// run into a single dash, matching the anchors emitted for headings.
func normalizeAnchor(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			builder.WriteRune(r)
			dash = false
		default:
			if !dash && builder.Len() > 0 {
				builder.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(builder.String(), "-")
}

// simpleName extracts the final path segment of a `$ref` style pointer.
func simpleName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
