package models

import (
	"strings"

	"github.com/littlelemon/restaurant-app/utils"
)

// ProductExtra is an optional add-on offered on the product detail page.
type ProductExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartLine is one chosen purchase. Item is a snapshot taken at add time,
// not a reference into the catalog, so a later menu refresh cannot change
// an already priced line.
type CartLine struct {
	Item     MenuItem       `json:"item"`
	Extras   []ProductExtra `json:"extras"`
	Quantity int            `json:"quantity"`
}

// BasePrice parses the item's price text. Menu prices arrive as free text
// like "$10", so an unparsable value degrades to 0 instead of failing the
// line.
func (l CartLine) BasePrice() float64 {
	return utils.ParsePrice(l.Item.Price)
}

// ExtrasTotal sums the selected add-ons.
func (l CartLine) ExtrasTotal() float64 {
	var total float64
	for _, e := range l.Extras {
		total += e.Price
	}
	return total
}

// LineTotal is (base price + extras) * quantity.
func (l CartLine) LineTotal() float64 {
	return (l.BasePrice() + l.ExtrasTotal()) * float64(l.Quantity)
}

// ExtrasText joins extra names for display, e.g. "Bacon, Parmesan".
func (l CartLine) ExtrasText() string {
	if len(l.Extras) == 0 {
		return ""
	}
	names := make([]string, 0, len(l.Extras))
	for _, e := range l.Extras {
		names = append(names, e.Name)
	}
	return strings.Join(names, ", ")
}
