package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/littlelemon/restaurant-app/catalog"
	"github.com/littlelemon/restaurant-app/controllers"
	"github.com/littlelemon/restaurant-app/menufetch"
	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/utils"
)

func seededCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.ReplaceAll([]models.MenuItem{
		{ID: 1, Title: "Greek Salad", Description: "Crispy lettuce, peppers, olives", Price: "$10", Category: "starters"},
		{ID: 2, Title: "Lemon Dessert", Description: "Traditional homemade Italian Lemon cake", Price: "$10", Category: "desserts"},
		{ID: 3, Title: "Pasta", Description: "Penne with fried aubergines", Price: "$12.99", Category: "mains"},
	})
	return cat
}

func setupMenuRouter(cat *catalog.Catalog, fetcher *menufetch.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(cat, fetcher)
	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/categories", menuCtrl.GetCategories)
	router.GET("/menu/:menu_id", menuCtrl.GetMenuByID)
	router.POST("/menu/refresh", menuCtrl.RefreshMenu)
	return router
}

func TestGetMenuSearchAndCategory(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(seededCatalog(), nil)

	req := httptest.NewRequest(http.MethodGet, "/menu?q=lemon", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	// Category filter composes with the query
	req = httptest.NewRequest(http.MethodGet, "/menu?q=e&category=starters", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	// Blank query returns everything
	req = httptest.NewRequest(http.MethodGet, "/menu", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["count"])
}

func TestGetMenuCategories(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(seededCatalog(), nil)

	req := httptest.NewRequest(http.MethodGet, "/menu/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []interface{}{"starters", "desserts", "mains"}, resp["data"])
}

func TestGetMenuByIDIncludesExtras(t *testing.T) {
	utils.InitLogger()
	router := setupMenuRouter(seededCatalog(), nil)

	req := httptest.NewRequest(http.MethodGet, "/menu/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	item := data["item"].(map[string]interface{})
	assert.Equal(t, "Pasta", item["title"])
	assert.Equal(t, 12.99, data["base_price"])
	assert.Equal(t, "30 minutes", data["delivery_estimate"])

	// Pasta offers Bacon and Parmesan
	extras := data["extras"].([]interface{})
	assert.Len(t, extras, 2)

	// Unknown id
	req = httptest.NewRequest(http.MethodGet, "/menu/42", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric id
	req = httptest.NewRequest(http.MethodGet, "/menu/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshMenuEndpoint(t *testing.T) {
	utils.InitLogger()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"menu":[{"id":1,"title":"Greek Salad","description":"","price":"$10","image":"","category":"starters"}]}`))
	}))
	defer upstream.Close()

	cat := catalog.New()
	fetcher := menufetch.NewClient(upstream.URL, cat, nil)
	router := setupMenuRouter(cat, fetcher)

	req := httptest.NewRequest(http.MethodPost, "/menu/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cat.Len())

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}
