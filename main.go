package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/littlelemon/restaurant-app/cart"
	"github.com/littlelemon/restaurant-app/catalog"
	"github.com/littlelemon/restaurant-app/config"
	"github.com/littlelemon/restaurant-app/menufetch"
	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/navigation"
	"github.com/littlelemon/restaurant-app/prefs"
	"github.com/littlelemon/restaurant-app/router"
	"github.com/littlelemon/restaurant-app/session"
	"github.com/littlelemon/restaurant-app/utils"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Navigation intents are logged server-side; the mobile client acts on
	// the routes it receives in responses.
	nav := navigation.NewDispatcher()
	nav.Subscribe(func(intent navigation.Intent) {
		utils.InfoLogger.Printf("Navigation intent: %s", intent.Route)
	})

	ledger := cart.NewLedger(nav)
	gate := session.NewGate(prefs.NewGormStore(db), ledger, nav)

	cat := catalog.New()
	cache := catalog.NewCache(db)

	// Prime the catalog from the last good fetch before the network call
	// completes.
	if cached, err := cache.Load(); err != nil {
		utils.ErrorLogger.Printf("Loading menu cache: %v", err)
	} else if len(cached) > 0 {
		cat.ReplaceAll(cached)
		utils.InfoLogger.Printf("Catalog primed from cache, %d items", len(cached))
	}

	fetcher := menufetch.NewClient(cfg.MenuURL, cat, cache)

	// One fetch per app run, off the request path.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		count, err := fetcher.Refresh(ctx)
		if err != nil {
			utils.ErrorLogger.Printf("Initial menu fetch failed: %v", err)
			return
		}
		utils.InfoLogger.Printf("Initial menu fetch loaded %d items", count)
	}()

	r := router.SetupRouter(router.Deps{
		Catalog:     cat,
		Ledger:      ledger,
		Gate:        gate,
		Fetcher:     fetcher,
		DeliveryFee: cfg.DeliveryFee,
		ServiceFee:  cfg.ServiceFee,
	})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&prefs.Preference{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
