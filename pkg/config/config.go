package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Dataset  DatasetConfig
	OTEL     OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// RegistryConfig holds NPPES registry API configuration
type RegistryConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatasetConfig holds CMS hospital dataset configuration
type DatasetConfig struct {
	URL         string
	Timeout     time.Duration
	WarmOnStart bool
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

const (
	defaultRegistryURL = "https://npiregistry.cms.hhs.gov/api/"
	defaultDatasetURL  = "https://data.cms.gov/provider-data/sites/default/files/resources/893c372430d9d71a1c52737d01239d47_1753409109/Hospital_General_Information.csv"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
			Env:  getEnv("APP_ENV", "development"),
		},
		Registry: RegistryConfig{
			BaseURL: getEnv("NPPES_BASE_URL", defaultRegistryURL),
			Timeout: time.Duration(getEnvAsInt("NPPES_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Dataset: DatasetConfig{
			URL:         getEnv("CMS_DATASET_URL", defaultDatasetURL),
			Timeout:     time.Duration(getEnvAsInt("CMS_TIMEOUT_SECONDS", 60)) * time.Second,
			WarmOnStart: getEnvAsBool("SNAPSHOT_WARM_ON_START", false),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "facility-registry"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
