package catalog

import (
	"sync"
	"testing"

	"github.com/littlelemon/restaurant-app/models"
	"github.com/stretchr/testify/assert"
)

func sampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Title: "Greek Salad", Description: "Crispy lettuce, peppers, olives", Price: "$10", Category: "starters"},
		{ID: 2, Title: "Lemon Dessert", Description: "Traditional homemade Italian Lemon cake", Price: "$10", Category: "desserts"},
		{ID: 3, Title: "Bruschetta", Description: "Grilled bread smeared with garlic", Price: "$7.99", Category: "starters"},
		{ID: 4, Title: "Pasta", Description: "Penne with fried aubergines", Price: "$12.99", Category: "mains"},
	}
}

func TestSearchBlankQueryReturnsAllInOrder(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())

	results := c.Search("", "")
	assert.Len(t, results, 4)
	assert.Equal(t, uint(1), results[0].ID)
	assert.Equal(t, uint(4), results[3].ID)

	// Whitespace-only query behaves like blank
	assert.Len(t, c.Search("   ", ""), 4)
}

func TestSearchMatchesTitleOrDescription(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())

	// Case-insensitive title match
	results := c.Search("lemon", "")
	assert.Len(t, results, 1)
	assert.Equal(t, "Lemon Dessert", results[0].Title)

	// Description match
	results = c.Search("garlic", "")
	assert.Len(t, results, 1)
	assert.Equal(t, "Bruschetta", results[0].Title)

	// No match
	assert.Empty(t, c.Search("sushi", ""))
}

func TestSearchCategoryFilter(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())

	results := c.Search("", "starters")
	assert.Len(t, results, 2)
	for _, item := range results {
		assert.Equal(t, "starters", item.Category)
	}

	// Category filter composes with search as AND
	results = c.Search("greek", "starters")
	assert.Len(t, results, 1)
	assert.Equal(t, "Greek Salad", results[0].Title)

	// Category comparison is exact and case-sensitive
	assert.Empty(t, c.Search("", "Starters"))

	// Filtered result is always a subset of the unfiltered one
	all := c.Search("e", "")
	filtered := c.Search("e", "mains")
	assert.LessOrEqual(t, len(filtered), len(all))
}

func TestReplaceAllIsWholesaleAndIdempotent(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())
	c.ReplaceAll(sampleMenu())
	assert.Equal(t, 4, c.Len())

	// A new fetch fully supersedes the old catalog
	c.ReplaceAll([]models.MenuItem{{ID: 9, Title: "Grilled Fish", Category: "mains"}})
	assert.Equal(t, 1, c.Len())
	assert.Empty(t, c.Search("lemon", ""))

	// Empty replace empties the catalog
	c.ReplaceAll(nil)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Search("", ""))
}

func TestReplaceAllCopiesInput(t *testing.T) {
	c := New()
	items := sampleMenu()
	c.ReplaceAll(items)

	// Mutating the caller's slice must not leak into the catalog
	items[0].Title = "Changed"
	results := c.Search("", "")
	assert.Equal(t, "Greek Salad", results[0].Title)
}

func TestCategoriesDistinctFirstSeenOrder(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())

	assert.Equal(t, []string{"starters", "desserts", "mains"}, c.Categories())
}

func TestGet(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())

	item, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "Lemon Dessert", item.Title)

	_, ok = c.Get(42)
	assert.False(t, ok)
}

// Readers racing a ReplaceAll must always see a complete catalog, old or
// new, never a partial mix.
func TestConcurrentReplaceAndSearch(t *testing.T) {
	c := New()
	c.ReplaceAll(sampleMenu())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n := len(c.Search("", ""))
				assert.True(t, n == 4 || n == 1)
			}
		}()
	}
	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			c.ReplaceAll(sampleMenu())
		} else {
			c.ReplaceAll(sampleMenu()[:1])
		}
	}
	wg.Wait()
}
