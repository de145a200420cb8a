package markup

import (
	"fmt"
	"strings"
)

// asciidocBuilder emits AsciiDoc fragments.
type asciidocBuilder struct{}

// AsciiDoc returns the AsciiDoc builder.
func AsciiDoc() Builder {
	return asciidocBuilder{}
}

func (asciidocBuilder) Flavor() Flavor {
	return FlavorAsciiDoc
}

func (asciidocBuilder) Anchor(name string) string {
	return normalizeAnchor(name)
}

func (b asciidocBuilder) CrossReference(ref string) string {
	name := simpleName(ref)
	return fmt.Sprintf("<<%s,%s>>", b.Anchor(name), name)
}

func (b asciidocBuilder) CrossReferenceTo(document, anchor, text string) string {
	if text == "" {
		text = anchor
	}
	if document == "" {
		return fmt.Sprintf("<<%s,%s>>", b.Anchor(anchor), text)
	}
	return fmt.Sprintf("xref:%s#%s[%s]", document, b.Anchor(anchor), text)
}

func (asciidocBuilder) Heading(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("=", level+1) + " " + text
}

func (asciidocBuilder) BoldText(text string) string {
	return "*" + text + "*"
}

func (asciidocBuilder) LiteralText(text string) string {
	return "`" + text + "`"
}

func (asciidocBuilder) Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	var out strings.Builder
	out.WriteString("|===\n")
	out.WriteString("|" + strings.Join(headers, " |") + "\n\n")
	for _, row := range rows {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			out.WriteString("|" + cell + "\n")
		}
		out.WriteString("\n")
	}
	out.WriteString("|===\n")
	return out.String()
}
