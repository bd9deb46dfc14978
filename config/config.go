package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/littlelemon/restaurant-app/menufetch"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config carries the environment-driven settings. The two fees are the
// externally-configured flat amounts added on top of the cart subtotal.
type Config struct {
	Port        string
	MenuURL     string
	DeliveryFee float64
	ServiceFee  float64
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		MenuURL:     getEnv("MENU_URL", menufetch.DefaultMenuURL),
		DeliveryFee: getEnvFloat("DELIVERY_FEE", 2.00),
		ServiceFee:  getEnvFloat("SERVICE_FEE", 1.00),
	}
}

// InitDB opens the local store. Default is a sqlite file next to the
// binary, the on-device cache analog; set DB_DRIVER=mysql with DB_DSN for
// a shared deployment.
func InitDB() (*gorm.DB, error) {
	switch getEnv("DB_DRIVER", "sqlite") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DRIVER=mysql requires DB_DSN")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "littlelemon.db")), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", os.Getenv("DB_DRIVER"))
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return parsed
}
