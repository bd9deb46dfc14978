package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/littlelemon/restaurant-app/cart"
	"github.com/littlelemon/restaurant-app/catalog"
	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/utils"
)

type CartController struct {
	Catalog     *catalog.Catalog
	Ledger      *cart.Ledger
	DeliveryFee float64
	ServiceFee  float64
}

func NewCartController(cat *catalog.Catalog, ledger *cart.Ledger, deliveryFee, serviceFee float64) *CartController {
	return &CartController{
		Catalog:     cat,
		Ledger:      ledger,
		DeliveryFee: deliveryFee,
		ServiceFee:  serviceFee,
	}
}

type cartLineView struct {
	Item       models.MenuItem `json:"item"`
	Extras     string          `json:"extras"`
	Quantity   int             `json:"quantity"`
	LineTotal  float64         `json:"line_total"`
	PriceLabel string          `json:"price_label"`
}

func viewOf(line models.CartLine) cartLineView {
	return cartLineView{
		Item:       line.Item,
		Extras:     line.ExtrasText(),
		Quantity:   line.Quantity,
		LineTotal:  line.LineTotal(),
		PriceLabel: utils.FormatPrice(line.LineTotal()),
	}
}

// AddItem appends one purchase to the cart.
// Body: {"menu_id": 1, "quantity": 2, "extras": ["Parmesan"]}
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuID   uint     `json:"menu_id"`
		Quantity int      `json:"quantity"`
		Extras   []string `json:"extras"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Quantity < 1 {
		utils.RespondError(c, http.StatusBadRequest, cart.ErrInvalidQuantity)
		return
	}

	item, ok := cc.Catalog.Get(req.MenuID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	// Selections must come from the extras offered for this item.
	extras := make([]models.ProductExtra, 0, len(req.Extras))
	for _, name := range req.Extras {
		extra, found := cart.FindExtra(item.Title, name)
		if !found {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown extra %q for %s", name, item.Title))
			return
		}
		extras = append(extras, extra)
	}

	line, err := cc.Ledger.AddLine(item, extras, req.Quantity)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("Added to cart: %s x%d", item.Title, req.Quantity)
	utils.RespondJSON(c, http.StatusCreated, "Added to cart", viewOf(line))
}

// GetCart returns the current lines and subtotal.
func (cc *CartController) GetCart(c *gin.Context) {
	lines := cc.Ledger.Lines()
	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, viewOf(line))
	}

	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"lines":    views,
		"subtotal": cc.Ledger.Subtotal(),
	})
}

// ClearCart empties the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Ledger.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}

func (cc *CartController) summary() gin.H {
	lines := cc.Ledger.Lines()
	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, viewOf(line))
	}

	subtotal := cc.Ledger.Subtotal()
	return gin.H{
		"lines":             views,
		"subtotal":          subtotal,
		"delivery_fee":      cc.DeliveryFee,
		"service_fee":       cc.ServiceFee,
		"total":             cc.Ledger.OrderTotal(cc.DeliveryFee, cc.ServiceFee),
		"total_label":       utils.FormatPrice(subtotal + cc.DeliveryFee + cc.ServiceFee),
		"delivery_estimate": DeliveryEstimate,
	}
}

// GetCheckout serves the checkout summary: lines, subtotal, both flat fees
// and the order total.
func (cc *CartController) GetCheckout(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Checkout summary", cc.summary())
}

// ConfirmCheckout places the order and returns a reference. The cart is
// left untouched, only logout empties it.
func (cc *CartController) ConfirmCheckout(c *gin.Context) {
	if cc.Ledger.Len() == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	summary := cc.summary()
	summary["order_ref"] = uuid.NewString()

	utils.InfoLogger.Printf("Order placed: %v", summary["order_ref"])
	utils.RespondJSON(c, http.StatusCreated, "Your order will be with you shortly.", summary)
}
