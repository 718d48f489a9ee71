package config

import (
	"os"
	"strings"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	// PublicURL is the origin the builder frontend is served from; share
	// links are derived from it.
	PublicURL string

	GoogleClientID string

	// SuperAdmins always resolve to the admin role on sign-in, whatever
	// the stored role says.
	SuperAdmins []string

	R2 R2Config

	StripeSecretKey string
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.PublicURL = strings.TrimSuffix(os.Getenv("PUBLIC_URL"), "/")
	if cfg.PublicURL == "" {
		cfg.PublicURL = "https://thiepcuoi.vn"
	}

	cfg.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")

	for _, email := range strings.Split(os.Getenv("SUPER_ADMINS"), ",") {
		if email = strings.TrimSpace(email); email != "" {
			cfg.SuperAdmins = append(cfg.SuperAdmins, strings.ToLower(email))
		}
	}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = strings.TrimSuffix(os.Getenv("R2_PUBLIC_URL"), "/")

	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")

	return cfg
}

// IsSuperAdmin reports whether the email is on the fixed allow-list.
func (c *Config) IsSuperAdmin(email string) bool {
	email = strings.ToLower(email)
	for _, admin := range c.SuperAdmins {
		if admin == email {
			return true
		}
	}
	return false
}

// StorageConfigured reports whether oversized media can be offloaded to R2
// instead of being stored inline.
func (c *Config) StorageConfigured() bool {
	return c.R2.AccountID != "" && c.R2.Bucket != ""
}
