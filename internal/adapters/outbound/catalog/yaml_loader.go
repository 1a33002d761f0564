package catalog

import (
	"fmt"
	"os"

	"github.com/stockpile/stockpile/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.CatalogLoader by reading a YAML catalog:
//
//	products:
//	  - id: A001
//	    name: Water 600ml
//	    quantity: 20
//	    price: 0.60
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

type catalogFile struct {
	Products []domain.CatalogEntry `yaml:"products"`
}

// Load reads the catalog at path. The operator asked for this file by
// flag, so a missing file is an error rather than a silent default.
func (l *YAMLLoader) Load(path string) ([]domain.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Products, nil
}
