package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Configuration
	HTTPAddr string

	// Assistant Configuration
	ServiceName    string
	GeminiAPIKey   string
	GeminiModel    string
	RequestTimeout time.Duration

	// External API Configuration
	WeatherAPIKey  string
	CurrencyAPIKey string

	// Monitoring Configuration
	NatsURL         string
	MonitoringTopic string
	ReportThreshold int

	// Data Directory Configuration
	DataDir string

	// Database Configuration
	DBPath string
}

func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Warn("Could not load env file", "file", envFile, "error", err)
		} else {
			slog.Info("Environment loaded", "file", envFile)
		}
	}

	return &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ServiceName:     getEnv("SERVICE_NAME", "travellai"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", "30s"),
		WeatherAPIKey:   getEnv("WEATHER_API_KEY", ""),
		CurrencyAPIKey:  getEnv("CURRENCY_API_KEY", ""),
		NatsURL:         getEnv("NATS_URL", "nats://127.0.0.1:4222"),
		MonitoringTopic: getEnv("MONITORING_TOPIC", "monitoring.travellai"),
		ReportThreshold: getEnvInt("REPORT_THRESHOLD", 16),
		DataDir:         getEnv("DATA_DIR", "data"),
		DBPath:          getEnv("DB_PATH", "data/travelplan.sqlite"),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key, defaultVal string) time.Duration {
	val := getEnv(key, defaultVal)
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	d, _ := time.ParseDuration(defaultVal)
	return d
}
