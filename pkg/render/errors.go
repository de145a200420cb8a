package render

import "fmt"

// RenderError wraps a renderer failure with the renderer's name so pipeline
// callers can report which stage broke.
type RenderError struct {
	Renderer string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: renderer %q: %v", e.Renderer, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
