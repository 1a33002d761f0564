package domain

// CatalogEntry is one raw record from a seed catalog, before domain
// validation has run.
type CatalogEntry struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Quantity int     `yaml:"quantity"`
	Price    float64 `yaml:"price"`
}

// CatalogLoader reads seed products from an external source.
type CatalogLoader interface {
	Load(path string) ([]CatalogEntry, error)
}
