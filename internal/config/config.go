package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"readiness/internal/adapters/objectstore"
	"readiness/internal/ports"
)

type Config struct {
	Env           string
	ListenAddr    string
	DatabaseURL   string
	PublicBaseURL string

	StripeSecretKey     string
	StripeWebhookSecret string

	SendGridAPIKey string
	EmailFromName  string
	EmailFromAddr  string
	SupportEmail   string

	Storage objectstore.Config

	AdminJWTSecret string

	ReportWorkers int
	SweepInterval time.Duration
	Sweep         ports.ClaimPolicy
}

func (c Config) Development() bool { return c.Env == "development" }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}

func seconds(key string, def int) time.Duration {
	return time.Duration(getenvInt(key, def)) * time.Second
}

// Load reads the environment, after applying a .env file if one exists. The
// returned error lists missing settings; it is not fatal on its own so
// callers can decide per environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:           getenv("APP_ENV", "development"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailFromName:  getenv("EMAIL_FROM_NAME", "AI Readiness"),
		EmailFromAddr:  getenv("EMAIL_FROM_ADDRESS", "reports@example.com"),
		SupportEmail:   getenv("SUPPORT_EMAIL", "support@example.com"),

		Storage: objectstore.Config{
			Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    getenv("STORAGE_BUCKET", "pdf-reports"),
			PublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
			UseSSL:    getenvBool("STORAGE_USE_SSL", true),
		},

		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),

		ReportWorkers: getenvInt("REPORT_WORKERS", 1),
		SweepInterval: seconds("SWEEP_INTERVAL_SECONDS", 30),
		Sweep: ports.ClaimPolicy{
			PendingGrace:    seconds("PENDING_GRACE_SECONDS", 120),
			StaleGenerating: seconds("STALE_GENERATING_SECONDS", 900),
			MaxAttempts:     getenvInt("MAX_REPORT_ATTEMPTS", 3),
		},
	}

	var missing []error
	for _, kv := range [][2]string{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"STRIPE_SECRET_KEY", cfg.StripeSecretKey},
		{"STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret},
		{"SENDGRID_API_KEY", cfg.SendGridAPIKey},
	} {
		if kv[1] == "" {
			missing = append(missing, fmt.Errorf("%s not set", kv[0]))
		}
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 30 * time.Second
	}
	return cfg, errors.Join(missing...)
}
