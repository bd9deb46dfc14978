// Package cart accumulates the line items of the active session and prices
// the order summary shown at checkout.
package cart

import (
	"errors"
	"sync"

	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/navigation"
)

// ErrInvalidQuantity reports an AddLine call with quantity < 1. The ledger
// rejects rather than clamps, callers are expected to validate first.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Ledger is owned by the active session and passed explicitly to whoever
// needs it; there is no process-global cart.
type Ledger struct {
	mu    sync.Mutex
	lines []models.CartLine
	nav   *navigation.Dispatcher
}

func NewLedger(nav *navigation.Dispatcher) *Ledger {
	return &Ledger{nav: nav}
}

// AddLine appends one chosen purchase. Repeated adds of the same item stay
// separate lines; there is no dedup or merge. Selected extras are deduped
// by name, keeping first-occurrence order for display.
func (l *Ledger) AddLine(item models.MenuItem, extras []models.ProductExtra, quantity int) (models.CartLine, error) {
	if quantity < 1 {
		return models.CartLine{}, ErrInvalidQuantity
	}

	seen := make(map[string]bool, len(extras))
	selected := make([]models.ProductExtra, 0, len(extras))
	for _, extra := range extras {
		if seen[extra.Name] {
			continue
		}
		seen[extra.Name] = true
		selected = append(selected, extra)
	}

	line := models.CartLine{Item: item, Extras: selected, Quantity: quantity}

	l.mu.Lock()
	l.lines = append(l.lines, line)
	l.mu.Unlock()

	l.nav.Emit(navigation.Back())
	return line, nil
}

// Clear empties the cart, used on logout.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}

// Lines returns a snapshot in insertion order.
func (l *Ledger) Lines() []models.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]models.CartLine, len(l.lines))
	copy(snapshot, l.lines)
	return snapshot
}

// Subtotal sums every line's total.
func (l *Ledger) Subtotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, line := range l.lines {
		total += line.LineTotal()
	}
	return total
}

// OrderTotal adds the flat fees on top of the subtotal. The fees are
// injected so the ledger carries no business constants.
func (l *Ledger) OrderTotal(deliveryFee, serviceFee float64) float64 {
	return l.Subtotal() + deliveryFee + serviceFee
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
