package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string

	// Acceptance thresholds for extracted records. MinLooseDescription is
	// the description length that lets a code-less record survive;
	// RequirePrice additionally demands a price on such records.
	MinLooseDescription int
	RequirePrice        bool

	// Supplier resolution. Dominance is the share of sheets that must name
	// the same supplier before all sheets are labelled as lists of one
	// supplier instead of one supplier per sheet.
	SupplierDominance float64
	DefaultSupplier   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		MinLooseDescription: getEnvInt("MIN_DESC_LEN", 10),
		RequirePrice:        getEnvBool("REQUIRE_PRICE", false),

		SupplierDominance: getEnvFloat("SUPPLIER_DOMINANCE", 0.70),
		DefaultSupplier:   getEnv("DEFAULT_SUPPLIER", "YAYI"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
