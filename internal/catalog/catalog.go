// Package catalog holds the course and pricing tables shown on the landing page.
//
// Tables are read from YAML once and never mutated afterwards. The default
// content is compiled into the binary; a different file can be supplied at
// startup through CATALOG_PATH.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

var defaultCatalog = mustParse(defaultYAML)

// Price is a non-negative amount in dollars.
type Price float64

// String formats the price with a leading currency symbol. Whole amounts drop
// the fractional part ("$45"), anything else keeps two decimals ("$9.50").
func (p Price) String() string {
	v := float64(p)
	if v == math.Trunc(v) {
		return "$" + strconv.FormatFloat(v, 'f', 0, 64)
	}
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

// Course is one entry of the course listing.
type Course struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Duration    string `yaml:"duration"`
	Price       Price  `yaml:"price"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
	Students    string `yaml:"students"`
}

// PricingPlan is one pricing tier.
type PricingPlan struct {
	Name        string   `yaml:"name"`
	Tier        string   `yaml:"tier"`
	Price       Price    `yaml:"price"`
	Features    []string `yaml:"features"`
	NotIncluded []string `yaml:"notIncluded"`
	ButtonText  string   `yaml:"buttonText"`
	Highlight   bool     `yaml:"highlight"`
}

// Catalog is the full content table. Order is declaration order.
type Catalog struct {
	Courses []Course      `yaml:"courses"`
	Plans   []PricingPlan `yaml:"pricing"`
}

// Default returns the compiled-in catalog. Callers must treat it as read-only.
func Default() *Catalog {
	return defaultCatalog
}

// Open returns the catalog stored at path, or the default one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes a catalog from r and validates it. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		panic("catalog: embedded catalog is invalid: " + err.Error())
	}
	return c
}
