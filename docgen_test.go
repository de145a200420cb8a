package docgen_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	docgen "github.com/oasdocs/go-docgen"
	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/testsupport"
)

func TestGenerateFromDocument(t *testing.T) {
	doc := testsupport.PetstoreFixture(t)

	out, err := docgen.GenerateFromDocument(context.Background(), doc, "markdown")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rendered := string(out)
	for _, want := range []string{"# Petstore 1.0.0", "### Pet", "### Category", "[Category](#category)"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("output missing %q:\n%s", want, rendered)
		}
	}
}

func TestGenerateFromFSSource(t *testing.T) {
	files := fstest.MapFS{
		"petstore.json": &fstest.MapFile{Data: []byte(testsupport.PetstoreDocument)},
	}

	out, err := docgen.Generate(
		context.Background(),
		openapi.SourceFromFS("petstore.json"),
		"asciidoc",
		docgen.WithLoaderOptions(openapi.WithFileSystem(files)),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "<<category,Category>>") {
		t.Fatalf("asciidoc cross-reference missing:\n%s", out)
	}
}
