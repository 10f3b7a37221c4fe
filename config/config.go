// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// JWT signing secret (required in production).
	JWTSecret string
	// Users allowed to generate password hashes for others.
	AdminUsers []string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
	BodyLimit  string

	// Parsing limits for the HTTP API.
	MaxBatch     int
	MaxTextBytes int
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg := FromViper(newViper())
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromViper builds a Config from v after applying defaults. It does not validate.
func FromViper(v *viper.Viper) *Config {
	// Defaults
	v.SetDefault("DB_USER", "racecond")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "racecond")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("ADMIN_USERS", "admin")
	v.SetDefault("BODY_LIMIT", "2M")
	v.SetDefault("PARSE_MAX_BATCH", 500)
	v.SetDefault("PARSE_MAX_TEXT_BYTES", 16384)

	return &Config{
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DBUser:       v.GetString("DB_USER"),
		DBPass:       v.GetString("DB_PASS"),
		DBHost:       v.GetString("DB_HOST"),
		DBPort:       v.GetString("DB_PORT"),
		DBName:       v.GetString("DB_NAME"),
		DBSSLMode:    v.GetString("DB_SSLMODE"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		AdminUsers:   splitTrimmed(v.GetString("ADMIN_USERS")),
		Debug:        v.GetBool("DEBUG"),
		Port:         v.GetString("PORT"),
		TLSDomains:   splitTrimmed(v.GetString("TLS_DOMAINS")),
		BodyLimit:    v.GetString("BODY_LIMIT"),
		MaxBatch:     v.GetInt("PARSE_MAX_BATCH"),
		MaxTextBytes: v.GetInt("PARSE_MAX_TEXT_BYTES"),
	}
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// IsAdmin reports whether username is listed in ADMIN_USERS (case-insensitive).
func (c *Config) IsAdmin(username string) bool {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return false
	}
	for _, admin := range c.AdminUsers {
		if username == strings.ToLower(admin) {
			return true
		}
	}
	return false
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseURL == "" && c.DBPass == "" {
		errs = append(errs, errors.New("config: DATABASE_URL or DB_PASS must be set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("config: JWT_SECRET must be set"))
	}
	if c.MaxBatch < 1 {
		errs = append(errs, fmt.Errorf("config: PARSE_MAX_BATCH must be positive, got %d", c.MaxBatch))
	}
	if c.MaxTextBytes < 1 {
		errs = append(errs, fmt.Errorf("config: PARSE_MAX_TEXT_BYTES must be positive, got %d", c.MaxTextBytes))
	}
	return errors.Join(errs...)
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
