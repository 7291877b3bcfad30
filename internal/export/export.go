// Package export writes the landing page and its assets to a directory so it
// can be hosted by any static file server.
package export

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"NeonSkills/internal/catalog"
	"NeonSkills/internal/disclosure"
	"NeonSkills/web"
	"NeonSkills/web/templates/pages/landing"
)

// IndexFile is the name of the exported page.
const IndexFile = "index.html"

// Write renders the page with a closed menu into dir/index.html and copies
// the static assets into dir/static.
func Write(ctx context.Context, dir string, cat *catalog.Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeIndex(ctx, filepath.Join(dir, IndexFile), cat); err != nil {
		return err
	}
	return copyStatic(filepath.Join(dir, "static"))
}

func writeIndex(ctx context.Context, path string, cat *catalog.Catalog) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".index-*.html")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	page := landing.Page(landing.Props{Catalog: cat, Menu: disclosure.Closed})
	if err := page.Render(ctx, tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("render page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func copyStatic(dst string) error {
	static := web.Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		src, err := static.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		out, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("copy %s: %w", path, err)
		}
		if _, err := io.Copy(out, src); err != nil {
			out.Close()
			return fmt.Errorf("copy %s: %w", path, err)
		}
		return out.Close()
	})
}
