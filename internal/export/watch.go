package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"NeonSkills/internal/catalog"
)

// Debounce is how long Watch waits after the last change before exporting.
var Debounce = 100 * time.Millisecond

// Watch exports once, then exports again every time the catalog file at
// catalogPath changes, until ctx is cancelled. A change that fails to load or
// validate is logged and the previous export stays in place.
func Watch(ctx context.Context, catalogPath, dir string, log zerolog.Logger) error {
	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return err
	}
	if err := Write(ctx, dir, cat); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(catalogPath)); err != nil {
		return fmt.Errorf("watch %s: %w", catalogPath, err)
	}
	target := filepath.Clean(catalogPath)

	debounce := time.NewTimer(0)
	<-debounce.C
	defer debounce.Stop()

	log.Info().Str("catalog", catalogPath).Str("out", dir).Msg("watching catalog")
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			debounce.Reset(Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")

		case <-debounce.C:
			cat, err := catalog.LoadFile(catalogPath)
			if err != nil {
				log.Error().Err(err).Msg("catalog change rejected")
				continue
			}
			if err := Write(ctx, dir, cat); err != nil {
				log.Error().Err(err).Msg("export failed")
				continue
			}
			log.Info().Int("courses", len(cat.Courses)).Int("plans", len(cat.Plans)).Msg("exported")
		}
	}
}
