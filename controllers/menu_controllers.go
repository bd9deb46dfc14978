package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-app/cart"
	"github.com/littlelemon/restaurant-app/catalog"
	"github.com/littlelemon/restaurant-app/menufetch"
	"github.com/littlelemon/restaurant-app/utils"
)

// DeliveryEstimate is the flat estimate shown on product detail and
// checkout.
const DeliveryEstimate = "30 minutes"

type MenuController struct {
	Catalog *catalog.Catalog
	Fetcher *menufetch.Client
}

func NewMenuController(cat *catalog.Catalog, fetcher *menufetch.Client) *MenuController {
	return &MenuController{Catalog: cat, Fetcher: fetcher}
}

// GetMenu answers the home screen query: optional substring search plus an
// optional exact category filter.
// Endpoint: GET /menu?q=<text>&category=<label>
func (mc *MenuController) GetMenu(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	items := mc.Catalog.Search(query, category)

	utils.RespondJSON(c, http.StatusOK, "List of menus", gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetCategories returns the distinct categories for the filter chips.
func (mc *MenuController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu categories", mc.Catalog.Categories())
}

// GetMenuByID serves the product detail page: the item, its available
// extras and the delivery estimate.
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	item, ok := mc.Catalog.Get(uint(id))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", gin.H{
		"item":              item,
		"extras":            cart.ExtrasFor(item.Title),
		"base_price":        utils.ParsePrice(item.Price),
		"delivery_estimate": DeliveryEstimate,
	})
}

// RefreshMenu triggers the fetch collaborator and replaces the catalog
// wholesale.
func (mc *MenuController) RefreshMenu(c *gin.Context) {
	count, err := mc.Fetcher.Refresh(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("menu refresh failed: %v", err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("menu refresh failed"))
		return
	}

	utils.InfoLogger.Printf("Menu refreshed, %d items loaded", count)
	utils.RespondJSON(c, http.StatusOK, "Menu refreshed", gin.H{
		"count": count,
	})
}
