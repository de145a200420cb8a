// Package document renders a reference document (definitions + operations
// overview) from a parsed description. One renderer instance exists per
// markup flavor; both share the same pipeline and differ only in the builder
// they emit through.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/oasdocs/go-docgen/pkg/adapter"
	"github.com/oasdocs/go-docgen/pkg/markup"
	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/render"
)

// skeleton assembles pre-rendered fragments into the final document. Output
// is markup, not HTML, so autoescaping stays off.
const skeleton = `{% autoescape off %}{{ header }}
{% if description %}
{{ description }}
{% endif %}{% if operations %}
{{ operations_heading }}

{{ operations }}{% endif %}{% if definitions %}
{{ definitions_heading }}
{% for section in definitions %}
{{ section }}{% endfor %}{% endif %}{% endautoescape %}`

var skeletonTemplate = pongo2.Must(pongo2.FromString(skeleton))

// Renderer emits a single reference document for one markup flavor.
type Renderer struct {
	name        string
	contentType string
	builder     markup.Builder
}

var _ render.Renderer = (*Renderer)(nil)

// Markdown returns the CommonMark renderer.
func Markdown() *Renderer {
	return &Renderer{
		name:        "markdown",
		contentType: "text/markdown",
		builder:     markup.Markdown(),
	}
}

// AsciiDoc returns the AsciiDoc renderer.
func AsciiDoc() *Renderer {
	return &Renderer{
		name:        "asciidoc",
		contentType: "text/asciidoc",
		builder:     markup.AsciiDoc(),
	}
}

// Name returns the registry identifier.
func (r *Renderer) Name() string {
	return r.name
}

// ContentType returns the MIME type of the produced document.
func (r *Renderer) ContentType() string {
	return r.contentType
}

// Render produces the full reference document.
func (r *Renderer) Render(ctx context.Context, description openapi.Description, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &render.RenderError{Renderer: r.name, Err: err}
	}

	b := r.builder
	resolver := options.DocumentResolver()

	sections := make([]string, 0, len(description.Definitions))
	for _, definition := range description.Definitions {
		section, err := r.definitionSection(definition, resolver, options)
		if err != nil {
			return nil, &render.RenderError{Renderer: r.name, Err: err}
		}
		sections = append(sections, section)
	}

	header := b.Heading(1, documentTitle(description))
	out, err := skeletonTemplate.Execute(pongo2.Context{
		"header":              header,
		"description":         markup.SanitizedText(description.Description),
		"operations_heading":  b.Heading(2, "Operations"),
		"operations":          r.operationsTable(description.Operations),
		"definitions_heading": b.Heading(2, "Definitions"),
		"definitions":         sections,
	})
	if err != nil {
		return nil, &render.RenderError{Renderer: r.name, Err: err}
	}
	return []byte(out), nil
}

func documentTitle(description openapi.Description) string {
	title := strings.TrimSpace(description.Title)
	if title == "" {
		title = "API Reference"
	}
	if description.Version != "" {
		title += " " + description.Version
	}
	return title
}

func (r *Renderer) operationsTable(operations []openapi.Operation) string {
	if len(operations) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(operations))
	for _, op := range operations {
		summary := markup.SanitizedText(op.Summary)
		if op.Deprecated {
			summary = strings.TrimSpace(summary + " (deprecated)")
		}
		rows = append(rows, []string{
			r.builder.LiteralText(op.Method),
			r.builder.LiteralText(op.Path),
			summary,
		})
	}
	return r.builder.Table([]string{"Method", "Path", "Summary"}, rows)
}

func (r *Renderer) definitionSection(definition openapi.Definition, resolver adapter.DocumentResolver, options render.Options) (string, error) {
	b := r.builder
	node := definition.Schema

	a, err := adapter.New(&node)
	if err != nil {
		return "", fmt.Errorf("definition %q: %w", definition.Name, err)
	}

	var section strings.Builder
	section.WriteString(b.Heading(3, definition.Name))
	section.WriteString("\n")

	if text := markup.SanitizedText(node.Description); text != "" {
		section.WriteString("\n" + text + "\n")
	}

	if len(node.Properties) > 0 {
		section.WriteString("\n")
		section.WriteString(r.propertiesTable(node, resolver, options))
		return section.String(), nil
	}

	// Definitions without properties (enums, aliases, bare maps/arrays)
	// document their resolved type inline.
	display := a.Type(resolver).DisplaySchema(b)
	section.WriteString("\n" + b.BoldText("Type") + ": " + display + "\n")
	if example, ok := a.Example(options.GenerateMissingExamples, b); ok {
		section.WriteString("\n" + b.BoldText("Example") + ": " + formatExample(example, b) + "\n")
	}
	return section.String(), nil
}

func (r *Renderer) propertiesTable(node openapi.Schema, resolver adapter.DocumentResolver, options render.Options) string {
	b := r.builder

	required := make(map[string]struct{}, len(node.Required))
	for _, name := range node.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(node.Properties))
	for name := range node.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		property := node.Properties[name]
		a := adapter.Must(&property)

		nameCell := b.BoldText(name)
		if _, ok := required[name]; ok {
			nameCell += " (required)"
		}

		exampleCell := ""
		if example, ok := a.Example(options.GenerateMissingExamples, b); ok {
			exampleCell = formatExample(example, b)
		}

		rows = append(rows, []string{
			nameCell,
			descriptionCell(a, property),
			a.Type(resolver).DisplaySchema(b),
			defaultCell(a, b),
			exampleCell,
		})
	}

	return b.Table([]string{"Name", "Description", "Schema", "Default", "Example"}, rows)
}

// descriptionCell folds the node's constraints into its description, the way
// readers expect them next to the prose.
func descriptionCell(a *adapter.Adapter, node openapi.Schema) string {
	parts := []string{}
	if text := markup.SanitizedText(node.Description); text != "" {
		parts = append(parts, text)
	}

	if minimum, ok := a.Min(); ok {
		bound := "Minimum: " + minimum.String()
		if a.ExclusiveMin() {
			bound += " (exclusive)"
		}
		parts = append(parts, bound)
	}
	if maximum, ok := a.Max(); ok {
		bound := "Maximum: " + maximum.String()
		if a.ExclusiveMax() {
			bound += " (exclusive)"
		}
		parts = append(parts, bound)
	}

	minLength, hasMin := a.MinLength()
	maxLength, hasMax := a.MaxLength()
	switch {
	case hasMin && hasMax:
		parts = append(parts, fmt.Sprintf("Length: %d - %d", minLength, maxLength))
	case hasMin:
		parts = append(parts, fmt.Sprintf("Minimum length: %d", minLength))
	case hasMax:
		parts = append(parts, fmt.Sprintf("Maximum length: %d", maxLength))
	}

	if pattern, ok := a.Pattern(); ok {
		parts = append(parts, "Pattern: "+pattern)
	}
	if a.ReadOnly() {
		parts = append(parts, "Read-only.")
	}

	return strings.Join(parts, " ")
}

func defaultCell(a *adapter.Adapter, b markup.Builder) string {
	value, ok := a.DefaultValue()
	if !ok {
		return ""
	}
	return formatExample(value, b)
}

// formatExample renders an example value tree as a single table cell.
// Cross-reference placeholders generated for `$ref` nodes are already markup
// and pass through untouched; plain strings always render as literal text
// and everything else renders as JSON.
func formatExample(value any, b markup.Builder) string {
	switch v := value.(type) {
	case adapter.RefPlaceholder:
		return string(v)
	case string:
		return b.LiteralText(v)
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return b.LiteralText(string(encoded))
	}
}
