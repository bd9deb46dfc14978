// Package menufetch pulls the remote menu JSON and replaces the catalog,
// typically once per app run.
package menufetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/littlelemon/restaurant-app/catalog"
	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/utils"
)

// DefaultMenuURL is the published menu resource the mobile app ships with.
const DefaultMenuURL = "https://raw.githubusercontent.com/Meta-Mobile-Developer-PC/Working-With-Data-API/main/menu.json"

type menuPayload struct {
	Menu []menuItemPayload `json:"menu"`
}

type menuItemPayload struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type Client struct {
	URL     string
	HTTP    *http.Client
	Catalog *catalog.Catalog
	Cache   *catalog.Cache
}

// NewClient builds a fetcher writing into cat and, when cache is non-nil,
// through to the on-disk copy.
func NewClient(url string, cat *catalog.Catalog, cache *catalog.Cache) *Client {
	if url == "" {
		url = DefaultMenuURL
	}
	return &Client{
		URL:     url,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Catalog: cat,
		Cache:   cache,
	}
}

// Refresh fetches the menu and replaces the catalog wholesale. Returns the
// number of items loaded. On any error the current catalog stays as-is.
func (cl *Client) Refresh(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cl.URL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("menu fetch returned status %d", resp.StatusCode)
	}

	var payload menuPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decoding menu payload: %w", err)
	}

	items := make([]models.MenuItem, 0, len(payload.Menu))
	for _, m := range payload.Menu {
		items = append(items, models.MenuItem{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Price:       m.Price,
			Image:       m.Image,
			Category:    m.Category,
		})
	}

	cl.Catalog.ReplaceAll(items)

	if cl.Cache != nil {
		// The cache is best effort, the in-memory catalog already holds
		// the fresh data.
		if err := cl.Cache.Save(items); err != nil && utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("saving menu cache: %v", err)
		}
	}

	return len(items), nil
}
