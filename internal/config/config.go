package config

import (
	"os"
	"time"

	"shareit/utils"
)

// ServerConfig holds everything the main service needs at startup.
type ServerConfig struct {
	Port        string
	DatabaseURL string
}

// GatewayConfig holds everything the gateway needs at startup.
type GatewayConfig struct {
	Port          string
	ServerURL     string
	ClientTimeout time.Duration
}

func LoadServer() ServerConfig {
	return ServerConfig{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: must("DATABASE_URL"),
	}
}

func LoadGateway() GatewayConfig {
	return GatewayConfig{
		Port:          getenv("APP_PORT", "8081"),
		ServerURL:     getenv("SHAREIT_SERVER_URL", "http://localhost:8080"),
		ClientTimeout: duration("CLIENT_TIMEOUT", 10*time.Second),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Fatal("missing required environment variable", map[string]any{"key": key})
	}
	return v
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Fatal("invalid duration in environment variable", map[string]any{"key": key, "value": v})
	}
	return d
}
