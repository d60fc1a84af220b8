package app

import (
	"context"
	"fmt"

	"github.com/coreloop/resdepot/internal/fsutil"
	"github.com/coreloop/resdepot/internal/manifest"
)

// loadManifests discovers every manifest file under the configured path,
// parses each with the loader matching its extension and merges the results
// into a single validated model.
func (a *App) loadManifests(ctx context.Context) (*manifest.Model, error) {
	exts := manifest.AllExtensions(a.loaders)

	files, err := fsutil.FindFilesByExtensions(a.config.ManifestPath, exts...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover manifest files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifest files found under %s", a.config.ManifestPath)
	}

	model := &manifest.Model{}
	for _, file := range files {
		loader, ok := manifest.ForPath(a.loaders, file)
		if !ok {
			a.logger.Debug("Skipping file with no matching loader.", "path", file)
			continue
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	a.logger.Info("Manifests loaded successfully.",
		"files", len(files),
		"resources", len(model.Decls))
	return model, nil
}
