package cart

import (
	"strings"

	"github.com/littlelemon/restaurant-app/models"
)

// ExtrasFor returns the add-ons offered for a menu item. The lookup is a
// static table keyed by lowercased title; items without a dedicated entry
// get the default pair.
func ExtrasFor(title string) []models.ProductExtra {
	switch strings.ToLower(title) {
	case "bruschetta":
		return []models.ProductExtra{
			{Name: "Eta", Price: 1.0},
			{Name: "Parmesan", Price: 1.0},
			{Name: "Dressing", Price: 1.0},
		}
	case "pasta":
		return []models.ProductExtra{
			{Name: "Bacon", Price: 1.0},
			{Name: "Parmesan", Price: 1.0},
		}
	default:
		return []models.ProductExtra{
			{Name: "Extra sauce", Price: 1.0},
			{Name: "Cheese", Price: 1.0},
		}
	}
}

// FindExtra resolves a selected extra by name against the offer for title.
func FindExtra(title, name string) (models.ProductExtra, bool) {
	for _, extra := range ExtrasFor(title) {
		if strings.EqualFold(extra.Name, name) {
			return extra, true
		}
	}
	return models.ProductExtra{}, false
}
