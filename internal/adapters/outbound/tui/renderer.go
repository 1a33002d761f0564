package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stockpile/stockpile/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	okStyle     = lipgloss.NewStyle().Foreground(success)
	errStyle    = lipgloss.NewStyle().Foreground(danger)
	idStyle     = lipgloss.NewStyle().Foreground(accent)
	separator   = faintStyle.Render(strings.Repeat("─", 44))
)

// menu actions in the order the operator selects them by number
var menuActions = []string{
	"Add product",
	"Delete product by ID",
	"Update quantity or price by ID",
	"Search products by name",
	"List all products",
	"Exit",
}

// RenderMenu formats the main menu.
func RenderMenu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("stockpile") + "  " + dimStyle.Render("inventory menu") + "\n")
	b.WriteString("  " + separator + "\n")
	for i, action := range menuActions {
		fmt.Fprintf(&b, "  %s %s\n", idStyle.Render(fmt.Sprintf("%d)", i+1)), action)
	}
	b.WriteString("  " + separator + "\n")
	return b.String()
}

// RenderProducts formats a product listing in collection order.
func RenderProducts(products []*domain.Product) string {
	if len(products) == 0 {
		return "  " + dimStyle.Render("(empty)") + "\n"
	}
	var b strings.Builder
	for _, p := range products {
		b.WriteString("  " + RenderProductLine(p) + "\n")
	}
	return b.String()
}

// RenderProductLine formats one product as a single aligned line.
func RenderProductLine(p *domain.Product) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		idStyle.Render(padRight(p.ID(), 8)),
		titleStyle.Render(padRight(p.Name(), 24)),
		dimStyle.Render(fmt.Sprintf("x%-6d", p.Quantity())),
		okStyle.Render(fmt.Sprintf("$%.2f", p.Price())),
	)
}

// RenderError formats a domain or input error as a one-line message.
func RenderError(err error) string {
	return "  " + errStyle.Render("error: "+err.Error()) + "\n"
}

// RenderNotice formats an informational one-liner.
func RenderNotice(msg string) string {
	return "  " + dimStyle.Render(msg) + "\n"
}

// RenderSuccess formats a confirmation one-liner.
func RenderSuccess(msg string) string {
	return "  " + okStyle.Render(msg) + "\n"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
