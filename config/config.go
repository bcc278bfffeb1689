package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// placeholderAccessKey mirrors the value shipped in .env.example.
const placeholderAccessKey = "YOUR_ACCESS_KEY_HERE"

type Config struct {
	Port      string
	SiteURL   string
	GinMode   string
	LogLevel  string
	LogFormat string
	// Form relay (Web3Forms)
	RelayAccessKey string
	RelayEndpoint  string
	RelayFromName  string
	RelayTimeout   time.Duration
	// Redis/Upstash Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	// Browser facing
	AllowedOrigins []string
	DefaultTheme   string
}

func LoadConfig() (*Config, error) {
	// .env is optional; in production the variables come from the environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		SiteURL:   strings.TrimRight(getEnv("SITE_URL", "https://bdgeneralcontractor.com"), "/"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		// Relay
		RelayAccessKey: getEnv("WEB3FORMS_ACCESS_KEY", placeholderAccessKey),
		RelayEndpoint:  getEnv("RELAY_ENDPOINT", "https://api.web3forms.com/submit"),
		RelayFromName:  getEnv("RELAY_FROM_NAME", "B&D General Contractor Website"),
		RelayTimeout:   time.Duration(getEnvInt("RELAY_TIMEOUT_SECONDS", 15)) * time.Second,
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),     // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),   // 5 quote requests per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 120), // 120 requests per window
		AllowedOrigins:            getEnvList("ALLOWED_ORIGINS", nil),
		DefaultTheme:              getEnv("DEFAULT_THEME", "dark"),
	}

	if cfg.RelayTimeout <= 0 {
		cfg.RelayTimeout = 15 * time.Second
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{cfg.SiteURL}
	}

	if cfg.RelayAccessKey == "" || cfg.RelayAccessKey == placeholderAccessKey {
		log.Println("WARNING: WEB3FORMS_ACCESS_KEY is not set. Contact form submissions will fail.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries and
// trailing slashes.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
