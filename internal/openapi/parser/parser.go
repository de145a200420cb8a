package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"

	pkgopenapi "github.com/oasdocs/go-docgen/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Parse converts a Document into the neutral Description consumed by
// renderers: document metadata, named definitions, and operations, each in a
// deterministic order.
func (p *Parser) Parse(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.Description, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Description{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgopenapi.Description{}, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return pkgopenapi.Description{}, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if p.options.ValidateDocument {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return pkgopenapi.Description{}, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	description := pkgopenapi.Description{}
	if spec.Info != nil {
		description.Title = spec.Info.Title
		description.Version = spec.Info.Version
		description.Description = spec.Info.Description
	}

	description.Definitions = extractDefinitions(spec)
	description.Operations = p.extractOperations(ctx, spec)

	if len(description.Definitions) == 0 && len(description.Operations) == 0 && !p.options.AllowPartialDocuments {
		return pkgopenapi.Description{}, errors.New("openapi parser: document contains no definitions or operations")
	}

	return description, nil
}

func extractDefinitions(spec *openapi3.T) []pkgopenapi.Definition {
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	definitions := make([]pkgopenapi.Definition, 0, len(names))
	for _, name := range names {
		definitions = append(definitions, pkgopenapi.Definition{
			Name:   name,
			Schema: convertSchema(spec.Components.Schemas[name]),
		})
	}
	return definitions
}

func (p *Parser) extractOperations(ctx context.Context, spec *openapi3.T) []pkgopenapi.Operation {
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil
	}

	var operations []pkgopenapi.Operation
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		collectOperation(ctx, &operations, "GET", path, item.Get)
		collectOperation(ctx, &operations, "PUT", path, item.Put)
		collectOperation(ctx, &operations, "POST", path, item.Post)
		collectOperation(ctx, &operations, "DELETE", path, item.Delete)
		collectOperation(ctx, &operations, "PATCH", path, item.Patch)
		collectOperation(ctx, &operations, "HEAD", path, item.Head)
		collectOperation(ctx, &operations, "OPTIONS", path, item.Options)
		collectOperation(ctx, &operations, "TRACE", path, item.Trace)
	}

	sort.Slice(operations, func(i, j int) bool {
		if operations[i].Path != operations[j].Path {
			return operations[i].Path < operations[j].Path
		}
		return operations[i].Method < operations[j].Method
	})
	return operations
}

func collectOperation(ctx context.Context, target *[]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) {
	if ctx.Err() != nil || operation == nil {
		return
	}

	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	op, err := pkgopenapi.NewOperation(opID, method, path)
	if err != nil {
		// Invalid operations are skipped but noted by leaving them out.
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Deprecated = operation.Deprecated
	*target = append(*target, op)
}

// convertSchema maps a kin-openapi schema tree onto the neutral node. A
// reference is converted to a bare reference node without descending into its
// resolved value: the referenced definition is documented on its own, and
// stopping here keeps cyclic documents from recursing.
func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Ref != "" {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{}
	}

	src := ref.Value
	schema := pkgopenapi.Schema{
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Title:       src.Title,
		Description: src.Description,
		Default:     src.Default,
		Example:     src.Example,
		Pattern:     src.Pattern,
		ReadOnly:    src.ReadOnly,
	}

	if len(src.Enum) > 0 {
		schema.Enum = make([]string, 0, len(src.Enum))
		for _, value := range src.Enum {
			schema.Enum = append(schema.Enum, enumString(value))
		}
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	if src.AdditionalProperties.Schema != nil {
		values := convertSchema(src.AdditionalProperties.Schema)
		schema.AdditionalProperties = &values
	} else if src.AdditionalProperties.Has != nil && *src.AdditionalProperties.Has {
		schema.AdditionalPropertiesAllowed = true
	}
	if src.Min != nil {
		value := decimal.NewFromFloat(*src.Min)
		schema.Minimum = &value
	}
	if src.Max != nil {
		value := decimal.NewFromFloat(*src.Max)
		schema.Maximum = &value
	}
	schema.ExclusiveMinimum = src.ExclusiveMin
	schema.ExclusiveMaximum = src.ExclusiveMax
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}

	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func enumString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
