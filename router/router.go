package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-app/cart"
	"github.com/littlelemon/restaurant-app/catalog"
	"github.com/littlelemon/restaurant-app/controllers"
	"github.com/littlelemon/restaurant-app/menufetch"
	"github.com/littlelemon/restaurant-app/middlewares"
	"github.com/littlelemon/restaurant-app/session"
)

// Deps bundles the session-scoped components the routes operate on.
type Deps struct {
	Catalog     *catalog.Catalog
	Ledger      *cart.Ledger
	Gate        *session.Gate
	Fetcher     *menufetch.Client
	DeliveryFee float64
	ServiceFee  float64
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	sessionCtrl := controllers.NewSessionController(deps.Gate)
	menuCtrl := controllers.NewMenuController(deps.Catalog, deps.Fetcher)
	cartCtrl := controllers.NewCartController(deps.Catalog, deps.Ledger, deps.DeliveryFee, deps.ServiceFee)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/register", sessionCtrl.Register)

	r.GET("/menu", menuCtrl.GetMenu)
	r.GET("/menu/categories", menuCtrl.GetCategories)
	r.GET("/menu/:menu_id", menuCtrl.GetMenuByID)
	r.POST("/menu/refresh", menuCtrl.RefreshMenu)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", sessionCtrl.Logout)
		auth.GET("/profile", sessionCtrl.GetProfile)
		auth.PATCH("/profile/notifications", sessionCtrl.UpdateNotifications)

		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.GET("/checkout", cartCtrl.GetCheckout)
		auth.POST("/checkout", cartCtrl.ConfirmCheckout)
	}

	return r
}
