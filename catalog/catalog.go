// Package catalog holds the in-memory menu for the current app run. It is
// populated wholesale by the fetch collaborator and answers the read
// queries behind the home screen.
package catalog

import (
	"strings"
	"sync"

	"github.com/littlelemon/restaurant-app/models"
)

// Catalog is safe for concurrent use: the background fetch calls
// ReplaceAll while request handlers read, and a reader always sees either
// the old catalog or the fully-new one.
type Catalog struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func New() *Catalog {
	return &Catalog{}
}

// ReplaceAll swaps the entire catalog for items. There is no merge with
// prior contents; an empty slice empties the catalog.
func (c *Catalog) ReplaceAll(items []models.MenuItem) {
	snapshot := make([]models.MenuItem, len(items))
	copy(snapshot, items)

	c.mu.Lock()
	c.items = snapshot
	c.mu.Unlock()
}

// Search returns items whose title or description contains query as a
// case-insensitive substring; a blank query matches everything. A non-empty
// category then restricts results to an exact, case-sensitive category
// match. Catalog insertion order is preserved.
func (c *Catalog) Search(query, category string) []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	results := make([]models.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		results = append(results, item)
	}
	return results
}

// Categories returns the distinct category values present, in first-seen
// order, for the filter chips on the home screen.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// Get looks an item up by id for the product detail page.
func (c *Catalog) Get(id uint) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
