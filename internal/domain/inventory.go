package domain

import (
	"strings"
	"sync"
)

// Inventory owns an ordered collection of Products with unique ids. The
// backing store is a plain slice: insertion order is the iteration order
// everywhere, and every lookup is a linear scan.
//
// The interactive console drives an Inventory from a single goroutine, but
// the RWMutex keeps scans and mutations serialized should another caller
// ever share one.
type Inventory struct {
	mu       sync.RWMutex
	products []*Product
}

// NewInventory creates an empty Inventory.
func NewInventory() *Inventory { return &Inventory{} }

// Add appends a product. It fails with a *DuplicateIDError when another
// product already carries the same id; the collection is unchanged on
// failure.
func (inv *Inventory) Add(p *Product) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, existing := range inv.products {
		if existing.ID() == p.ID() {
			return &DuplicateIDError{ID: p.ID()}
		}
	}
	inv.products = append(inv.products, p)
	return nil
}

// RemoveByID removes the product with the given id, keeping the relative
// order of the rest. It reports false when no product matches; a missing id
// is an expected outcome, not an error.
func (inv *Inventory) RemoveByID(id string) bool {
	id = strings.TrimSpace(id)
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i, p := range inv.products {
		if p.ID() == id {
			inv.products = append(inv.products[:i], inv.products[i+1:]...)
			return true
		}
	}
	return false
}

// ProductUpdate names the fields an Update may change. Nil pointers mean
// "leave as is": either, both, or neither field may be given.
type ProductUpdate struct {
	Quantity *string
	Price    *string
}

// Update applies upd to the product with the given id, reporting
// (false, nil) when the id is absent. Given fields are applied in order,
// quantity before price, and a *ValidationError from a setter stops the
// application immediately. A valid quantity followed by an invalid price
// therefore leaves the new quantity in place.
func (inv *Inventory) Update(id string, upd ProductUpdate) (bool, error) {
	id = strings.TrimSpace(id)
	inv.mu.Lock()
	defer inv.mu.Unlock()
	var target *Product
	for _, p := range inv.products {
		if p.ID() == id {
			target = p
			break
		}
	}
	if target == nil {
		return false, nil
	}
	if upd.Quantity != nil {
		if err := target.SetQuantity(*upd.Quantity); err != nil {
			return true, err
		}
	}
	if upd.Price != nil {
		if err := target.SetPrice(*upd.Price); err != nil {
			return true, err
		}
	}
	return true, nil
}

// SearchByName returns every product whose lowercased name contains term as
// a substring, in collection order. An empty term matches nothing, never
// the whole collection.
func (inv *Inventory) SearchByName(term string) []*Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	var matches []*Product
	for _, p := range inv.products {
		if strings.Contains(strings.ToLower(p.Name()), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ListAll returns a snapshot of the collection in insertion order. The
// returned slice is the caller's to mutate; its elements are the stored
// products themselves, not copies.
func (inv *Inventory) ListAll() []*Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*Product, len(inv.products))
	copy(out, inv.products)
	return out
}

// Len reports how many products the inventory holds.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.products)
}
