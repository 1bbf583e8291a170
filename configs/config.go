package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource string
	Port     string
	SeedDemo bool

	// Checkout policy: when true a failed order-store write aborts the
	// checkout before the staff relay; when false (default) the relay is the
	// authoritative notification path and the flow completes anyway.
	StrictSubmit bool
	TaxRate      decimal.Decimal

	// Optional path to a legacy serialized cart to import on startup.
	LegacyCartImport string

	OrdersAPIURL    string
	OrdersAPISecret string

	TelegramBotToken    string
	TelegramStaffChatID string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.1"))
	if err != nil {
		log.Fatalf("invalid TAX_RATE: %v", err)
	}

	return &Config{
		DBSource:            getEnv("DB_SOURCE", "hotel.db"),
		Port:                getEnv("PORT", "8000"),
		SeedDemo:            getBoolEnv("SEED_DEMO", false),
		StrictSubmit:        getBoolEnv("CHECKOUT_STRICT_SUBMIT", false),
		TaxRate:             taxRate,
		LegacyCartImport:    os.Getenv("LEGACY_CART_IMPORT"),
		OrdersAPIURL:        os.Getenv("ORDERS_API_URL"),
		OrdersAPISecret:     os.Getenv("ORDERS_API_SECRET"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramStaffChatID: os.Getenv("TELEGRAM_STAFF_CHAT_ID"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
