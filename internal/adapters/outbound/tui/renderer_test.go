package tui_test

import (
	"errors"
	"testing"

	"github.com/stockpile/stockpile/internal/adapters/outbound/tui"
	"github.com/stockpile/stockpile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMenu(t *testing.T) {
	out := tui.RenderMenu()
	assert.Contains(t, out, "stockpile")
	for _, action := range []string{
		"1) Add product",
		"2) Delete product by ID",
		"3) Update quantity or price by ID",
		"4) Search products by name",
		"5) List all products",
		"6) Exit",
	} {
		assert.Contains(t, out, action)
	}
}

func TestRenderProducts(t *testing.T) {
	p, err := domain.NewProduct("A001", "Water 600ml", "20", "0.60")
	require.NoError(t, err)

	out := tui.RenderProducts([]*domain.Product{p})
	assert.Contains(t, out, "A001")
	assert.Contains(t, out, "Water 600ml")
	assert.Contains(t, out, "x20")
	assert.Contains(t, out, "$0.60")
}

func TestRenderProductsEmpty(t *testing.T) {
	assert.Contains(t, tui.RenderProducts(nil), "(empty)")
}

func TestRenderError(t *testing.T) {
	out := tui.RenderError(errors.New("boom"))
	assert.Contains(t, out, "error: boom")
}

func TestRenderNoticeAndSuccess(t *testing.T) {
	assert.Contains(t, tui.RenderNotice("hello"), "hello")
	assert.Contains(t, tui.RenderSuccess("done"), "done")
}
