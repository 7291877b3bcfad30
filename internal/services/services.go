package services

import (
	"fmt"

	"NeonSkills/internal/catalog"
	"NeonSkills/internal/config"
)

// Services holds what the handlers are built from.
type Services struct {
	Catalog *catalog.Catalog
}

// New loads the content catalog named by cfg, falling back to the built-in one.
func New(cfg config.Config) (*Services, error) {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Services{Catalog: cat}, nil
}
