// Package config loads the API settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port string `env:"API_PORT" envDefault:"8080"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"mongo"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"samparc"`
	DatabaseDSN   string `env:"DATABASE_DSN" envDefault:"samparc.db"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"10m"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"14"`

	// ADMIN_CREDENTIALS is a comma separated list of email:password pairs.
	AdminCredentials []string `env:"ADMIN_CREDENTIALS" envSeparator:","`
	CORSOrigins      []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"2"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername  string `env:"SMTP_USERNAME"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`
	HospitalEmail string `env:"HOSPITAL_EMAIL" envDefault:"samparc6@gmail.com"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`

	SeedSellerName     string `env:"SEED_SELLER_NAME" envDefault:"Gaurav Saswade"`
	SeedSellerBusiness string `env:"SEED_SELLER_BUSINESS" envDefault:"SAMPARC MEDICAL"`
	SeedSellerEmail    string `env:"SEED_SELLER_EMAIL"`
	SeedSellerPassword string `env:"SEED_SELLER_PASSWORD"`
}

// AdminCredential is one back-office login.
type AdminCredential struct {
	Email    string
	Password string
}

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case "mongo", "postgres", "sqlite":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be mongo, postgres or sqlite, got %q", c.StorageDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if _, err := c.Admins(); err != nil {
		return err
	}
	if (c.SeedSellerEmail == "") != (c.SeedSellerPassword == "") {
		return errors.New("SEED_SELLER_EMAIL and SEED_SELLER_PASSWORD must be set together")
	}
	return nil
}

// Admins parses AdminCredentials.
func (c *Config) Admins() ([]AdminCredential, error) {
	admins := make([]AdminCredential, 0, len(c.AdminCredentials))
	for _, raw := range c.AdminCredentials {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		email, password, ok := strings.Cut(raw, ":")
		if !ok || email == "" || password == "" {
			return nil, fmt.Errorf("ADMIN_CREDENTIALS entry %q must look like email:password", raw)
		}
		admins = append(admins, AdminCredential{Email: strings.ToLower(strings.TrimSpace(email)), Password: password})
	}
	return admins, nil
}

// MailEnabled reports whether SMTP credentials are present.
func (c *Config) MailEnabled() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

// SMSEnabled reports whether Twilio credentials are present.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}
