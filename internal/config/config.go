package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	DistDir        string
	CatalogPath    string
	DatabaseURL    string
	RedisURL       string
	LogLevel       string
	Environment    string
	CORSOrigins    string
	WhatsAppNumber string
	ContactEmail   string
	BannerInterval time.Duration
	SESRegion      string
	SESSender      string
	LeadEmail      string
}

// Load reads configuration from an optional .env file and the environment.
// Variables already set in the environment take precedence over .env.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("DIST_DIR", "dist")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("WHATSAPP_NUMBER", DefaultSite.Contact.WhatsApp)
	v.SetDefault("CONTACT_EMAIL", DefaultSite.Contact.Email)
	v.SetDefault("BANNER_INTERVAL", 5*time.Second)
	v.SetDefault("SES_REGION", "")
	v.SetDefault("SES_SENDER", "")
	v.SetDefault("LEAD_EMAIL", "")
	return v
}

// FromViper builds a Config from an already-populated viper instance.
func FromViper(v *viper.Viper) *Config {
	interval := v.GetDuration("BANNER_INTERVAL")
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &Config{
		Port:           v.GetString("PORT"),
		DistDir:        v.GetString("DIST_DIR"),
		CatalogPath:    v.GetString("CATALOG_PATH"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RedisURL:       v.GetString("REDIS_URL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		Environment:    v.GetString("ENVIRONMENT"),
		CORSOrigins:    v.GetString("CORS_ORIGINS"),
		WhatsAppNumber: v.GetString("WHATSAPP_NUMBER"),
		ContactEmail:   v.GetString("CONTACT_EMAIL"),
		BannerInterval: interval,
		SESRegion:      v.GetString("SES_REGION"),
		SESSender:      v.GetString("SES_SENDER"),
		LeadEmail:      v.GetString("LEAD_EMAIL"),
	}
}

// LeadMailEnabled reports whether sell submissions should also be e-mailed.
func (c *Config) LeadMailEnabled() bool {
	return c.SESRegion != "" && c.SESSender != "" && c.LeadEmail != ""
}
