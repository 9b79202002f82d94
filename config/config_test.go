package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(func(string) string { return "" })
	if cfg.Port != "8080" || cfg.DBPath != "farmassist.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LLMEndpoint != "https://api.mistral.ai" || cfg.LLMModel != "mistral-small-latest" {
		t.Fatalf("llm defaults: %+v", cfg)
	}
	if cfg.LLMTemperature != 0.7 || cfg.LLMMaxTokens != 500 {
		t.Fatalf("llm tuning defaults: %v %v", cfg.LLMTemperature, cfg.LLMMaxTokens)
	}
	if cfg.EnableAuth {
		t.Fatal("auth should default off")
	}
	if cfg.SessionTTL != 720*time.Hour || cfg.DevUID != "farmer-dev" {
		t.Fatalf("session defaults: %v %q", cfg.SessionTTL, cfg.DevUID)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("cors = %v", cfg.CORSOrigins)
	}
	if cfg.KBAllowedDomains != nil {
		t.Fatalf("allowed domains = %v", cfg.KBAllowedDomains)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":               "9000",
		"LLM_TEMPERATURE":    "0.2",
		"LLM_MAX_TOKENS":     "not-a-number",
		"ENABLE_AUTH":        "true",
		"KB_ALLOWED_DOMAINS": " agritech.tnau.ac.in, ,icar.org.in",
		"WEATHER_API_KEY":    "abcdef123456",
	}
	cfg := FromEnv(func(k string) string { return env[k] })
	if cfg.Port != "9000" || cfg.LLMTemperature != 0.2 || !cfg.EnableAuth {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LLMMaxTokens != 500 {
		t.Fatalf("bad int should fall back to default, got %d", cfg.LLMMaxTokens)
	}
	if !reflect.DeepEqual(cfg.KBAllowedDomains, []string{"agritech.tnau.ac.in", "icar.org.in"}) {
		t.Fatalf("allowed domains = %v", cfg.KBAllowedDomains)
	}
	if cfg.WeatherAPIKey != "abcdef123456" {
		t.Fatal("masking must not touch the live config")
	}
}

func TestMasked(t *testing.T) {
	c := AppConfig{LLMAPIKey: "sk-secret-9876", WeatherAPIKey: "abc"}
	m := c.masked()
	if strings.Contains(m.LLMAPIKey, "secret") || m.LLMAPIKey != "****9876" {
		t.Fatalf("llm key = %q", m.LLMAPIKey)
	}
	if m.WeatherAPIKey != "****" {
		t.Fatalf("weather key = %q", m.WeatherAPIKey)
	}
	if c.LLMAPIKey != "sk-secret-9876" {
		t.Fatal("original mutated")
	}
}

func TestValidateSessionSecret(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"dev mode keeps default", map[string]string{}, nil},
		{"auth with default secret", map[string]string{"ENABLE_AUTH": "true"}, ErrWeakSessionSecret},
		{"auth with explicit default", map[string]string{"ENABLE_AUTH": "true", "SESSION_SECRET": "farmassist-dev-secret"}, ErrWeakSessionSecret},
		{"auth with private secret", map[string]string{"ENABLE_AUTH": "true", "SESSION_SECRET": "k9-private-value"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv(func(k string) string { return tt.env[k] })
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
	if err := (AppConfig{EnableAuth: true}).Validate(); !errors.Is(err, ErrWeakSessionSecret) {
		t.Fatalf("empty secret = %v", err)
	}
}
