package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ExportAll renders the diagram in every format concurrently and writes
// <dir>/<base>.<ext> files. It returns the written paths in format order.
func ExportAll(ctx context.Context, r Renderer, diagram, dir, base string, formats ...Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	paths := make([]string, len(formats))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, format := range formats {
		i, format := i, format
		eg.Go(func() error {
			data, err := r.Render(egCtx, diagram, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			path := filepath.Join(dir, base+"."+format.Ext())
			//nolint:gosec // Exported diagrams are meant to be shared
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			paths[i] = path

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}
