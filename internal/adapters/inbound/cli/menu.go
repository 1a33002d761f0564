package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stockpile/stockpile/internal/adapters/outbound/tui"
	"github.com/stockpile/stockpile/internal/application"
	"github.com/stockpile/stockpile/internal/domain"
)

// session is one interactive menu run. It reads operator selections until
// exit or EOF and applies them to the inventory service; domain failures
// become one-line messages and never end the session.
type session struct {
	svc *application.InventoryService
	in  *bufio.Scanner
	out io.Writer
}

func newSession(svc *application.InventoryService, in io.Reader, out io.Writer) *session {
	return &session{svc: svc, in: bufio.NewScanner(in), out: out}
}

// run loops over the menu until the operator picks exit. EOF on input ends
// the session cleanly: a closed terminal is not an error.
func (s *session) run() error {
	for {
		fmt.Fprint(s.out, tui.RenderMenu())
		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			s.addFlow()
		case "2":
			s.deleteFlow()
		case "3":
			s.updateFlow()
		case "4":
			s.searchFlow()
		case "5":
			s.listFlow()
		case "6":
			fmt.Fprint(s.out, tui.RenderSuccess("Goodbye!"))
			return nil
		default:
			fmt.Fprint(s.out, tui.RenderNotice("Unknown option, try again."))
		}
	}
}

// prompt prints msg and reads one trimmed input line. ok is false at EOF.
func (s *session) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, "  "+msg)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptInt re-prompts until the input parses as an integer, returning the
// raw text so the domain setter runs the full validation.
func (s *session) promptInt(msg string) (string, bool) {
	for {
		raw, ok := s.prompt(msg)
		if !ok {
			return "", false
		}
		if _, err := strconv.Atoi(raw); err == nil {
			return raw, true
		}
		fmt.Fprint(s.out, tui.RenderNotice("Invalid input, enter a whole number."))
	}
}

// promptFloat re-prompts until the input parses as a number. A comma is
// accepted as the decimal separator.
func (s *session) promptFloat(msg string) (string, bool) {
	for {
		raw, ok := s.prompt(msg)
		if !ok {
			return "", false
		}
		if _, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err == nil {
			return raw, true
		}
		fmt.Fprint(s.out, tui.RenderNotice("Invalid input, enter a number."))
	}
}

func (s *session) addFlow() {
	fmt.Fprint(s.out, tui.RenderNotice("-- Add product --"))
	id, ok := s.prompt("ID: ")
	if !ok {
		return
	}
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	quantity, ok := s.promptInt("Quantity: ")
	if !ok {
		return
	}
	price, ok := s.promptFloat("Price (USD): ")
	if !ok {
		return
	}

	p, err := s.svc.AddProduct(id, name, quantity, price)
	if err != nil {
		fmt.Fprint(s.out, tui.RenderError(err))
		return
	}
	fmt.Fprint(s.out, tui.RenderSuccess("Added "+p.Describe()))
}

func (s *session) deleteFlow() {
	fmt.Fprint(s.out, tui.RenderNotice("-- Delete product --"))
	id, ok := s.prompt("ID to delete: ")
	if !ok {
		return
	}
	if s.svc.RemoveProduct(id) {
		fmt.Fprint(s.out, tui.RenderSuccess("Product deleted."))
	} else {
		fmt.Fprint(s.out, tui.RenderNotice("No product with that ID."))
	}
}

// updateFlow reads both fields once and surfaces any validation error as a
// message, abandoning the single attempt instead of re-prompting.
func (s *session) updateFlow() {
	fmt.Fprint(s.out, tui.RenderNotice("-- Update product --"))
	id, ok := s.prompt("ID to update: ")
	if !ok {
		return
	}
	fmt.Fprint(s.out, tui.RenderNotice("Leave a field blank to keep its value."))
	quantity, ok := s.prompt("New quantity: ")
	if !ok {
		return
	}
	price, ok := s.prompt("New price (USD): ")
	if !ok {
		return
	}

	var upd domain.ProductUpdate
	if quantity != "" {
		upd.Quantity = &quantity
	}
	if price != "" {
		upd.Price = &price
	}

	found, err := s.svc.UpdateProduct(id, upd)
	if err != nil {
		fmt.Fprint(s.out, tui.RenderError(err))
		return
	}
	if !found {
		fmt.Fprint(s.out, tui.RenderNotice("No product with that ID."))
		return
	}
	fmt.Fprint(s.out, tui.RenderSuccess("Product updated."))
}

func (s *session) searchFlow() {
	fmt.Fprint(s.out, tui.RenderNotice("-- Search products --"))
	term, ok := s.prompt("Name contains: ")
	if !ok {
		return
	}
	matches := s.svc.Search(term)
	if len(matches) == 0 {
		fmt.Fprint(s.out, tui.RenderNotice("No matching products."))
		return
	}
	fmt.Fprint(s.out, tui.RenderProducts(matches))
}

func (s *session) listFlow() {
	fmt.Fprint(s.out, tui.RenderNotice("-- Current inventory --"))
	fmt.Fprint(s.out, tui.RenderProducts(s.svc.List()))
}
