package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "farmassist-dev-secret"

var ErrWeakSessionSecret = errors.New("ENABLE_AUTH=true needs SESSION_SECRET set to a private value")

type AppConfig struct {
	Port     string
	DBPath   string
	Timezone string

	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int

	WeatherEndpoint string
	WeatherAPIKey   string

	CropTablePath    string
	KBAllowedDomains []string
	KBMaxBytes       int

	EnableAuth    bool
	SessionSecret string
	SessionTTL    time.Duration
	DevUID        string
	CORSOrigins   []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	cfg := FromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[cfg] %v", err)
	}
	return cfg
}

// Validate rejects settings the server must not start with.
func (c AppConfig) Validate() error {
	if c.EnableAuth && (c.SessionSecret == "" || c.SessionSecret == defaultSessionSecret) {
		return ErrWeakSessionSecret
	}
	return nil
}

// FromEnv builds the config from a lookup function; empty values take the default.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		v, err := strconv.ParseFloat(get(k, ""), 64)
		if err != nil {
			return def
		}
		return v
	}
	getInt := func(k string, def int) int {
		v, err := strconv.Atoi(get(k, ""))
		if err != nil {
			return def
		}
		return v
	}

	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		DBPath:   get("DB_PATH", "farmassist.db"),
		Timezone: get("TZ", "Asia/Kolkata"),

		LLMEndpoint:    get("LLM_ENDPOINT", "https://api.mistral.ai"),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "mistral-small-latest"),
		LLMTemperature: getFloat("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:   getInt("LLM_MAX_TOKENS", 500),

		WeatherEndpoint: get("WEATHER_ENDPOINT", "https://api.openweathermap.org"),
		WeatherAPIKey:   get("WEATHER_API_KEY", ""),

		CropTablePath:    get("CROP_TABLE_PATH", ""),
		KBAllowedDomains: splitList(get("KB_ALLOWED_DOMAINS", "")),
		KBMaxBytes:       getInt("KB_MAX_BYTES_PER_PAGE", 1500000),

		EnableAuth:    get("ENABLE_AUTH", "false") == "true",
		SessionSecret: get("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    time.Duration(getInt("SESSION_TTL_HOURS", 24*30)) * time.Hour,
		DevUID:        get("DEV_UID", "farmer-dev"),
		CORSOrigins:   splitList(get("CORS_ORIGINS", "http://localhost:5173")),
	}
	log.Printf("[cfg] %+v", cfg.masked())
	return cfg
}

// masked hides API keys for logging.
func (c AppConfig) masked() AppConfig {
	c.LLMAPIKey = mask(c.LLMAPIKey)
	c.WeatherAPIKey = mask(c.WeatherAPIKey)
	c.SessionSecret = mask(c.SessionSecret)
	return c
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
