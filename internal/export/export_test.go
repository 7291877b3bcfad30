package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"NeonSkills/internal/catalog"
	"NeonSkills/internal/disclosure"
	"NeonSkills/web/templates/pages/landing"
)

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	if err := Write(context.Background(), dir, catalog.Default()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if err != nil {
		t.Fatal(err)
	}

	var want bytes.Buffer
	if err := landing.Page(landing.Props{Catalog: catalog.Default(), Menu: disclosure.Closed}).Render(context.Background(), &want); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Error("Exported index.html differs from the rendered page")
	}

	css, err := os.ReadFile(filepath.Join(dir, "static", "styles.css"))
	if err != nil {
		t.Fatalf("Expected static/styles.css to be exported: %v", err)
	}
	if !bytes.Contains(css, []byte(".plan-card")) {
		t.Error("Exported stylesheet looks wrong")
	}
}

func TestWrite_Overwrites(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if err := Write(ctx, dir, catalog.Default()); err != nil {
		t.Fatal(err)
	}
	if err := Write(ctx, dir, &catalog.Catalog{}); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(got, []byte(`data-card="course"`)) {
		t.Error("Expected second export to replace the first")
	}
}

const watchCatalog = `courses:
  - id: 1
    title: %s
    category: Development
    duration: 1 Week
    price: 10
    image: https://example.com/a.png
    description: Short course.
    students: "+1"
`

func TestWatch(t *testing.T) {
	Debounce = 10 * time.Millisecond

	src := t.TempDir()
	out := t.TempDir()
	catalogPath := filepath.Join(src, "catalog.yaml")
	writeCatalog(t, catalogPath, "First Title")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, catalogPath, out, zerolog.Nop()) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch returned error: %v", err)
		}
	}()

	waitForIndex(t, out, "First Title")

	// Invalid content must not replace the last good export.
	if err := os.WriteFile(catalogPath, []byte("courses: [{id: 1, price: -5}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	waitForIndex(t, out, "First Title")

	writeCatalog(t, catalogPath, "Second Title")
	waitForIndex(t, out, "Second Title")
}

func writeCatalog(t *testing.T, path, title string) {
	t.Helper()
	doc := fmt.Sprintf(watchCatalog, title)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func waitForIndex(t *testing.T, dir, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(filepath.Join(dir, IndexFile))
		if err == nil && bytes.Contains(data, []byte(want)) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("index.html never contained %q", want)
}

func TestWatch_MissingCatalog(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir(), zerolog.Nop())
	if err == nil {
		t.Error("Expected error for missing catalog")
	}
}
