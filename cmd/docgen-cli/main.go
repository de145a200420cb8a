package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	docgen "github.com/oasdocs/go-docgen"
	"github.com/oasdocs/go-docgen/pkg/openapi"
	"github.com/oasdocs/go-docgen/pkg/render"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path or URL")
	renderer := flag.String("renderer", "", "renderer to use (markdown, asciidoc)")
	output := flag.String("output", "", "output file (stdout if empty)")
	examples := flag.Bool("examples", false, "generate placeholder examples for schemas without one")
	configPath := flag.String("config", "", "optional docgen.yaml configuration file")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := config{}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg = cfg.merge(config{
		Source:           *source,
		Renderer:         *renderer,
		Output:           *output,
		GenerateExamples: *examples,
	}, set)

	ctx := context.Background()
	gen := docgen.New(docgen.WithLoaderOptions(openapi.WithHTTPFallback(0)))

	if cfg.Source == "" {
		if err := survey.AskOne(&survey.Input{Message: "OpenAPI document path or URL:"}, &cfg.Source, survey.WithValidator(survey.Required)); err != nil {
			log.Fatalf("No source provided: %v", err)
		}
	}
	if cfg.Renderer == "" {
		cfg.Renderer = promptRenderer(gen.Renderers())
	}

	src := parseSource(cfg.Source)
	if src == nil {
		log.Fatalf("invalid source: %q", cfg.Source)
	}

	out, err := gen.Generate(ctx, docgen.Request{
		Source:   src,
		Renderer: cfg.Renderer,
		Options: render.Options{
			GenerateMissingExamples: cfg.GenerateExamples,
		},
	})
	if err != nil {
		log.Fatalf("Failed to generate documentation: %v", err)
	}

	if cfg.Output == "" {
		fmt.Println(string(out))
		return
	}

	if _, err := os.Stat(cfg.Output); err == nil {
		overwrite := false
		prompt := &survey.Confirm{Message: fmt.Sprintf("%s exists, overwrite?", cfg.Output)}
		if err := survey.AskOne(prompt, &overwrite); err != nil || !overwrite {
			log.Fatalf("Refusing to overwrite %s", cfg.Output)
		}
	}
	if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Documentation written to %s\n", cfg.Output)
}

func promptRenderer(available []string) string {
	choice := ""
	prompt := &survey.Select{
		Message: "Output format:",
		Options: available,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		// Non-interactive runs fall back to the default renderer.
		return ""
	}
	return choice
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}
