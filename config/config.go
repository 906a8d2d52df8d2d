package config

import "os"

type Config struct {
	Port                 string
	DatabaseURL          string
	SessionSecret        string
	StripeSecretKey      string
	StripePublishableKey string
	StripeAPIBase        string
	SendGridAPIKey       string
	ContactAlertEmail    string
}

func Load() Config {
	cfg := Config{
		Port:                 os.Getenv("PORT"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		StripeAPIBase:        os.Getenv("STRIPE_API_BASE"),
		SendGridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		ContactAlertEmail:    os.Getenv("CONTACT_ALERT_EMAIL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StripeAPIBase == "" {
		cfg.StripeAPIBase = "https://api.stripe.com"
	}

	return cfg
}
