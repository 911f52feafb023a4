package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort             = "8080"
	defaultJWTTTLHours      = 24 * 7
	defaultVerificationTTL  = 24
	defaultGeocodeURL       = "https://nominatim.openstreetmap.org/search"
	defaultGeocodeUserAgent = "palahian.com/1.0 (admin@palahian.com)"
	defaultGeocodeTimeout   = 10
	defaultGeocodeCacheTTL  = 24
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// DSN renders the libpq keyword/value connection string used by the postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=palahian TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
}

type Config struct {
	Port     string
	AppURL   string
	Database DatabaseConfig
	Mail     MailConfig

	JWTSecret       string
	JWTTTL          time.Duration
	VerificationTTL time.Duration

	RedisURL         string
	GeocodeURL       string
	GeocodeUserAgent string
	GeocodeTimeout   time.Duration
	GeocodeCacheTTL  time.Duration

	CORSOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

// LoadEnvFiles loads the first .env file found among paths. A missing file is
// not an error; the process environment is used as is.
func LoadEnvFiles(paths ...string) {
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			log.Printf("Loaded environment from %s", p)
			return
		}
	}
	log.Println("No .env file found, using process environment")
}

// LoadDatabase reads only the DB_* variables. Tools that never serve HTTP use it
// directly.
func LoadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getEnvOrDefault("DB_NAME", "palahian"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		TimeZone: getEnvOrDefault("DB_TIMEZONE", "Asia/Manila"),
	}
}

func Load() (Config, error) {
	cfg := Config{
		Port:   getEnvOrDefault("PORT", defaultPort),
		AppURL: strings.TrimRight(getEnvOrDefault("APP_URL", "http://localhost:5000"), "/"),
		Database: LoadDatabase(),
		Mail: MailConfig{
			SMTPHost: os.Getenv("SMTP_HOST"),
			SMTPPort: getEnvOrDefault("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   getEnvOrDefault("SMTP_SENDER", "noreply@palahian.com"),
		},
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTTTL:           time.Duration(getEnvIntOrDefault("JWT_TTL_HOURS", defaultJWTTTLHours)) * time.Hour,
		VerificationTTL:  time.Duration(getEnvIntOrDefault("VERIFICATION_TTL_HOURS", defaultVerificationTTL)) * time.Hour,
		RedisURL:         os.Getenv("REDIS_URL"),
		GeocodeURL:       getEnvOrDefault("GEOCODE_URL", defaultGeocodeURL),
		GeocodeUserAgent: getEnvOrDefault("GEOCODE_USER_AGENT", defaultGeocodeUserAgent),
		GeocodeTimeout:   time.Duration(getEnvIntOrDefault("GEOCODE_TIMEOUT_SECONDS", defaultGeocodeTimeout)) * time.Second,
		GeocodeCacheTTL:  time.Duration(getEnvIntOrDefault("GEOCODE_CACHE_TTL_HOURS", defaultGeocodeCacheTTL)) * time.Hour,
		CORSOrigins:      splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5000")),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
