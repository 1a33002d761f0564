package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is one inventory record. Fields are unexported and every mutation
// goes through a validated setter, so a Product is never observable in an
// invalid state: id and name are non-empty, quantity and price non-negative.
type Product struct {
	id       string
	name     string
	quantity int
	price    float64
}

// NewProduct builds a Product from raw operator input. The id and name are
// trimmed and must not be empty; quantity must parse as a non-negative
// integer; price must parse as a non-negative number, with a comma accepted
// as the decimal separator. On any failure it returns a *ValidationError
// and no product.
func NewProduct(id, name, quantity, price string) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	p := &Product{id: id}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the product's identifier. It is fixed at construction.
func (p *Product) ID() string { return p.id }

// Name returns the current product name.
func (p *Product) Name() string { return p.name }

// Quantity returns the units in stock.
func (p *Product) Quantity() int { return p.quantity }

// Price returns the unit price.
func (p *Product) Price() float64 { return p.price }

// SetName replaces the product name. The value is trimmed and must not be
// empty; on failure the stored name is untouched.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	p.name = name
	return nil
}

// SetQuantity replaces the stock count. The input must parse as an integer
// and must not be negative; on failure the stored quantity is untouched.
func (p *Product) SetQuantity(quantity string) error {
	n, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return &ValidationError{Field: "quantity", Reason: "must be an integer"}
	}
	if n < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	p.quantity = n
	return nil
}

// SetPrice replaces the unit price. A comma is accepted as the decimal
// separator and normalized to a period before parsing; the value must not
// be negative. On failure the stored price is untouched.
func (p *Product) SetPrice(price string) error {
	normalized := strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if f < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	p.price = f
	return nil
}

// Describe renders the product as one human-readable line.
func (p *Product) Describe() string {
	return fmt.Sprintf("ID: %s | Name: %s | Qty: %d | Price: $%.2f",
		p.id, p.name, p.quantity, p.price)
}
