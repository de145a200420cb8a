package markup

import (
	"fmt"
	"strings"
)

// markdownBuilder emits CommonMark fragments.
type markdownBuilder struct{}

// Markdown returns the CommonMark builder.
func Markdown() Builder {
	return markdownBuilder{}
}

func (markdownBuilder) Flavor() Flavor {
	return FlavorMarkdown
}

func (markdownBuilder) Anchor(name string) string {
	return normalizeAnchor(name)
}

func (b markdownBuilder) CrossReference(ref string) string {
	name := simpleName(ref)
	return fmt.Sprintf("[%s](#%s)", name, b.Anchor(name))
}

func (b markdownBuilder) CrossReferenceTo(document, anchor, text string) string {
	if text == "" {
		text = anchor
	}
	return fmt.Sprintf("[%s](%s#%s)", text, document, b.Anchor(anchor))
}

func (markdownBuilder) Heading(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

func (markdownBuilder) BoldText(text string) string {
	return "**" + text + "**"
}

func (markdownBuilder) LiteralText(text string) string {
	return "`" + text + "`"
}

func (markdownBuilder) Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	var out strings.Builder
	writeRow := func(cells []string) {
		out.WriteString("|")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = escapeCell(cells[i])
			}
			out.WriteString(" " + cell + " |")
		}
		out.WriteString("\n")
	}

	writeRow(headers)
	out.WriteString("|")
	for range headers {
		out.WriteString("---|")
	}
	out.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return out.String()
}

// escapeCell keeps pipe characters inside table cells from breaking rows.
func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\n", "<br>")
	return strings.ReplaceAll(cell, "|", "\\|")
}
