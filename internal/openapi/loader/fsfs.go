package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// loadFromFS reads a document out of an abstract filesystem, which covers
// embedded specs and in-memory test filesystems alike.
func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("openapi loader: no filesystem configured for fs source")
	}
	if name == "" {
		return nil, errors.New("openapi loader: fs entry name is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", name, err)
	}
	return data, nil
}
