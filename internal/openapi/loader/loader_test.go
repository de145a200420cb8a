package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/oasdocs/go-docgen/pkg/openapi"
)

const minimalDoc = `{"openapi":"3.0.0","info":{"title":"t","version":"1"},"paths":{}}`

func TestLoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"specs/petstore.json": &fstest.MapFile{Data: []byte(minimalDoc)},
	}
	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/petstore.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimalDoc {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
	if doc.Location() != "specs/petstore.json" {
		t.Fatalf("unexpected location: %s", doc.Location())
	}
}

func TestLoadFromFSWithoutFilesystem(t *testing.T) {
	l := New(pkgopenapi.LoaderOptions{})

	_, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("missing.json"))
	if err == nil || !strings.Contains(err.Error(), "filesystem") {
		t.Fatalf("expected filesystem error, got %v", err)
	}
}

func TestLoadHTTPDisabledByDefault(t *testing.T) {
	l := New(pkgopenapi.LoaderOptions{})

	_, err := l.Load(context.Background(), pkgopenapi.SourceFromURL("http://example.com/openapi.json"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}
}

func TestLoadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(minimalDoc))
	}))
	defer server.Close()

	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(server.Client())))

	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != minimalDoc {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
}

func TestLoadHTTPRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(server.Client())))

	_, err := l.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoadNilSource(t *testing.T) {
	l := New(pkgopenapi.LoaderOptions{})
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	files := fstest.MapFS{"doc.json": &fstest.MapFile{Data: []byte(minimalDoc)}}
	l := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.Load(ctx, pkgopenapi.SourceFromFS("doc.json")); err == nil {
		t.Fatal("expected context error")
	}
}
