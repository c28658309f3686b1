package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the screening service.
type Config struct {
	GRPCPort    string
	HTTPPort    string
	Environment string
	LogLevel    string
	LogFormat   string

	KafkaBrokers      []string
	KafkaClientID     string
	KafkaSASLMech     string
	KafkaSASLUsername string
	KafkaSASLPassword string
	KafkaTLS          bool
	EventsTopic       string
	EventsEnabled     bool

	JWTSecret        string
	JWTPublicKeyFile string
	JWTIssuer        string

	TLSCertFile    string
	TLSKeyFile     string
	GRPCReflection bool

	OTLPEndpoint string

	DuplicateThreshold float64
	BatchConcurrency   int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		GRPCPort:          getEnv("GRPC_PORT", "8095"),
		HTTPPort:          getEnv("HTTP_PORT", "9095"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		KafkaBrokers:      splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaClientID:     getEnv("KAFKA_CLIENT_ID", "screening-service"),
		KafkaSASLMech:     getEnv("KAFKA_SASL_MECHANISM", ""),
		KafkaSASLUsername: getEnv("KAFKA_SASL_USERNAME", ""),
		KafkaSASLPassword: getEnv("KAFKA_SASL_PASSWORD", ""),
		EventsTopic:       getEnv("EVENTS_TOPIC", "screening.events"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTPublicKeyFile:  getEnv("JWT_PUBLIC_KEY_FILE", ""),
		JWTIssuer:         getEnv("JWT_ISSUER", "bib-identity"),
		TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		OTLPEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var err error
	if cfg.EventsEnabled, err = getEnvBool("EVENTS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.KafkaTLS, err = getEnvBool("KAFKA_TLS", false); err != nil {
		return nil, err
	}
	if cfg.GRPCReflection, err = getEnvBool("GRPC_REFLECTION", true); err != nil {
		return nil, err
	}
	if cfg.DuplicateThreshold, err = getEnvFloat("DUPLICATE_THRESHOLD", 75); err != nil {
		return nil, err
	}
	if cfg.BatchConcurrency, err = getEnvInt("BATCH_CONCURRENCY", 8); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// TLSEnabled reports whether both a certificate and a key were configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// KafkaSASLEnabled reports whether SASL credentials were configured.
func (c *Config) KafkaSASLEnabled() bool {
	return c.KafkaSASLUsername != ""
}

// AuthEnabled reports whether JWT validation is configured.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" || c.JWTPublicKeyFile != ""
}

func (c *Config) validate() error {
	if math.IsNaN(c.DuplicateThreshold) || c.DuplicateThreshold < 0 || c.DuplicateThreshold > 100 {
		return fmt.Errorf("DUPLICATE_THRESHOLD must be within [0,100], got %v", c.DuplicateThreshold)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("BATCH_CONCURRENCY must be positive, got %d", c.BatchConcurrency)
	}
	if c.EventsEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_ENABLED is true")
	}
	if c.IsProduction() && !c.AuthEnabled() {
		return fmt.Errorf("JWT_SECRET or JWT_PUBLIC_KEY_FILE is required in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
