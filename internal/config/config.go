package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string

	// Storage
	DatabaseURL string
	RedisURL    string
	SeedPath    string

	// Physics
	SpeedOfLightMPS float64

	// Presentation
	MaxAnimationMs    float64
	MinObjectPx       float64
	MaxWidthRatio     float64
	SelectionCapacity int
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs. The speed of light is configuration, not
// a hardcoded constant, so alternate unit systems and test doubles can
// override it.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port: Get("PORT", "8080"),

		DatabaseURL: Get("DATABASE_URL", ""),
		RedisURL:    Get("REDIS_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/cosmic.json"),

		SpeedOfLightMPS: GetFloat("SPEED_OF_LIGHT_MPS", 299792458),

		MaxAnimationMs:    GetFloat("MAX_ANIMATION_MS", 10000),
		MinObjectPx:       GetFloat("MIN_OBJECT_PX", 10),
		MaxWidthRatio:     GetFloat("MAX_WIDTH_RATIO", 0.4),
		SelectionCapacity: GetInt("SELECTION_CAPACITY", 2),
	}
}

func Get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func GetFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
