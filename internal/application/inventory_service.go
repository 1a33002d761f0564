package application

import (
	"fmt"
	"strconv"

	"github.com/stockpile/stockpile/internal/domain"
)

// InventoryService drives one in-memory inventory for the lifetime of a
// console session. Domain errors pass through to the caller unchanged; the
// presentation layer decides how to show them.
type InventoryService struct {
	inventory *domain.Inventory
	catalog   domain.CatalogLoader
}

// NewInventoryService creates a service over an empty inventory.
func NewInventoryService(catalog domain.CatalogLoader) *InventoryService {
	return &InventoryService{
		inventory: domain.NewInventory(),
		catalog:   catalog,
	}
}

// AddProduct validates the raw field input, builds a Product, and adds it
// to the inventory.
func (s *InventoryService) AddProduct(id, name, quantity, price string) (*domain.Product, error) {
	p, err := domain.NewProduct(id, name, quantity, price)
	if err != nil {
		return nil, err
	}
	if err := s.inventory.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveProduct deletes by id, reporting whether anything was removed.
func (s *InventoryService) RemoveProduct(id string) bool {
	return s.inventory.RemoveByID(id)
}

// UpdateProduct applies a partial update to the product with the given id.
func (s *InventoryService) UpdateProduct(id string, upd domain.ProductUpdate) (bool, error) {
	return s.inventory.Update(id, upd)
}

// Search returns products whose name contains term, case-insensitively.
func (s *InventoryService) Search(term string) []*domain.Product {
	return s.inventory.SearchByName(term)
}

// List returns a snapshot of all products in insertion order.
func (s *InventoryService) List() []*domain.Product {
	return s.inventory.ListAll()
}

// SeedFromCatalog loads a catalog file and adds every entry to the
// inventory. The catalog is operator-authored, so the first invalid or
// duplicate entry aborts the seed with an error naming it. Returns the
// number of products added.
func (s *InventoryService) SeedFromCatalog(path string) (int, error) {
	entries, err := s.catalog.Load(path)
	if err != nil {
		return 0, fmt.Errorf("loading catalog: %w", err)
	}
	for i, e := range entries {
		p, err := domain.NewProduct(
			e.ID,
			e.Name,
			strconv.Itoa(e.Quantity),
			strconv.FormatFloat(e.Price, 'f', -1, 64),
		)
		if err != nil {
			return i, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
		if err := s.inventory.Add(p); err != nil {
			return i, fmt.Errorf("catalog entry %d: %w", i+1, err)
		}
	}
	return len(entries), nil
}
