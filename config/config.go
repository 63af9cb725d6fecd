package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server ServerConfig
	Admin  AdminConfig
	Stripe StripeConfig
	Email  EmailConfig
	Data   DataConfig
	Feeds  FeedsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// AdminConfig holds the shared admin secret. The hardcoded fallback is a
// deployment risk kept for parity with the original deployment; set
// ADMIN_PASSWORD in production.
type AdminConfig struct {
	Password string
}

// StripeConfig holds checkout and webhook settings.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string // empty = signature verification disabled (insecure)
	SuccessURL    string
	CancelURL     string
	PriceIDs      PriceTable
}

// PriceTable maps package tier -> billing frequency -> Stripe price id.
type PriceTable map[string]map[string]string

// EmailConfig for SMTP notifications. Sending is skipped when SMTPUser or
// SMTPPass is empty.
type EmailConfig struct {
	FromAddress string
	AdminEmail  string
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
}

// DataConfig holds the flat-file store locations.
type DataConfig struct {
	Dir            string // base data directory
	PendingFile    string // submissions store
	ApprovedFile   string // directory store
	ReviewQueueDir string
	PublishedDir   string
	ArchiveDir     string
}

// FeedsConfig holds RSS aggregator settings.
type FeedsConfig struct {
	FetchTimeoutSec int
	SourceDelayMS   int // pause between sources
	SnippetLength   int
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	readTimeout, _ := strconv.Atoi(getEnv("READ_TIMEOUT_SEC", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT_SEC", "30"))

	dataDir := getEnv("DATA_DIR", "data")

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", "oldoak2024"),
		},
		Stripe: StripeConfig{
			SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
			SuccessURL:    getEnv("STRIPE_SUCCESS_URL", "https://oldoaktown.co.uk/payment-success.html"),
			CancelURL:     getEnv("STRIPE_CANCEL_URL", "https://oldoaktown.co.uk/payment-cancel.html"),
			PriceIDs: PriceTable{
				"featured": {
					"monthly": getEnv("STRIPE_PRICE_FEATURED_MONTHLY", "price_featured_monthly"),
					"annual":  getEnv("STRIPE_PRICE_FEATURED_ANNUAL", "price_featured_annual"),
				},
				"premium": {
					"monthly": getEnv("STRIPE_PRICE_PREMIUM_MONTHLY", "price_premium_monthly"),
					"annual":  getEnv("STRIPE_PRICE_PREMIUM_ANNUAL", "price_premium_annual"),
				},
				"newsletter": {
					"monthly": getEnv("STRIPE_PRICE_NEWSLETTER_MONTHLY", "price_newsletter_monthly"),
					"annual":  getEnv("STRIPE_PRICE_NEWSLETTER_ANNUAL", "price_newsletter_annual"),
				},
			},
		},
		Email: EmailConfig{
			FromAddress: getEnv("SMTP_FROM", "noreply@oldoaktown.co.uk"),
			AdminEmail:  getEnv("ADMIN_EMAIL", "admin@oldoaktown.co.uk"),
			SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:    getEnvInt("SMTP_PORT", 587),
			SMTPUser:    getEnv("SMTP_USER", ""),
			SMTPPass:    getEnv("SMTP_PASS", ""),
		},
		Data: DataConfig{
			Dir:            dataDir,
			PendingFile:    getEnv("PENDING_FILE", filepath.Join(dataDir, "pending-listings.json")),
			ApprovedFile:   getEnv("APPROVED_FILE", filepath.Join(dataDir, "approved-listings.json")),
			ReviewQueueDir: getEnv("REVIEW_QUEUE_DIR", filepath.Join(dataDir, "review-queue")),
			PublishedDir:   getEnv("PUBLISHED_DIR", filepath.Join(dataDir, "published", "news")),
			ArchiveDir:     getEnv("ARCHIVE_DIR", filepath.Join(dataDir, "archive")),
		},
		Feeds: FeedsConfig{
			FetchTimeoutSec: getEnvInt("FEED_FETCH_TIMEOUT_SEC", 30),
			SourceDelayMS:   getEnvInt("FEED_SOURCE_DELAY_MS", 1000),
			SnippetLength:   getEnvInt("FEED_SNIPPET_LENGTH", 300),
		},
	}
	return cfg, nil
}

// PriceID returns the configured Stripe price id for a package/frequency pair.
func (c StripeConfig) PriceID(pkg, frequency string) (string, bool) {
	freqs, ok := c.PriceIDs[strings.ToLower(pkg)]
	if !ok {
		return "", false
	}
	id, ok := freqs[strings.ToLower(frequency)]
	return id, ok
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
