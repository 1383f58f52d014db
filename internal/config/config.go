package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Port string

	// Dataset source
	DatasetPath  string
	DatasetTable string // SQLite sources only
	DatasetSheet string // XLSX sources only

	TopN          int
	ChartWidthCM  float64
	ChartHeightCM float64

	RateLimit       int // chart renders per client per window
	RateLimitWindow time.Duration
	AllowedOrigins  []string

	LogLevel        string
	LogFormat       string // text or json
	ShutdownTimeout time.Duration
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Port:            normalizePort(getEnv("PORT", ":8080")),
		DatasetPath:     getEnv("DATASET_PATH", "./data/PrimeFrontier_SolarDeploymentDataset.csv"),
		DatasetTable:    getEnv("DATASET_TABLE", "regions"),
		DatasetSheet:    getEnv("DATASET_SHEET", ""),
		TopN:            getEnvInt("TOP_N", 10),
		ChartWidthCM:    getEnvFloat("CHART_WIDTH_CM", 16),
		ChartHeightCM:   getEnvFloat("CHART_HEIGHT_CM", 10),
		RateLimit:       getEnvInt("RATE_LIMIT", 30),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// normalizePort accepts both "8080" and ":8080"
func normalizePort(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if v, err := time.ParseDuration(value); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
