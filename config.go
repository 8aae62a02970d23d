package vinti4net

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production card payment endpoint.
const DefaultBaseURL = "https://mc.vinti4net.cv/BizMPIOnUsSisp/CardPayment"

var posIDPattern = regexp.MustCompile(`^\d{1,9}$`)

// Config holds the merchant credentials and settings needed to talk to the
// Vinti4Net (SISP) gateway.
type Config struct {
	// PosID is the merchant terminal identifier (1 to 9 digits).
	PosID string `yaml:"pos_id" json:"pos_id" env:"VINTI4_POS_ID"`

	// PosAuthCode is the shared secret. It is only ever hashed: never
	// posted, logged or placed in a URL.
	PosAuthCode string `yaml:"pos_auth_code" json:"pos_auth_code" env:"VINTI4_POS_AUTH_CODE"`

	// BaseURL optionally overrides the gateway endpoint, e.g. for a test
	// environment.
	BaseURL string `yaml:"base_url" json:"base_url" env:"VINTI4_BASE_URL"`

	// Language is the default languageMessages value (pt, en or fr).
	Language string `yaml:"language" json:"language" env:"VINTI4_LANGUAGE" env-default:"pt"`

	// ResponseURL is the default urlMerchantResponse for requests that do
	// not set one.
	ResponseURL string `yaml:"response_url" json:"response_url" env:"VINTI4_RESPONSE_URL"`
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.PosID == "" {
		return fmt.Errorf("vinti4net: PosID is required")
	}
	if !posIDPattern.MatchString(c.PosID) {
		return fmt.Errorf("vinti4net: PosID must have 1 to 9 digits")
	}
	if c.PosAuthCode == "" {
		return fmt.Errorf("vinti4net: PosAuthCode is required")
	}
	return nil
}

// DefaultBaseURL returns the configured endpoint or the production one.
func (c Config) DefaultBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

// String implements fmt.Stringer without exposing the auth code.
func (c Config) String() string {
	secret := ""
	if c.PosAuthCode != "" {
		secret = "[redacted]"
	}
	return fmt.Sprintf("Config{PosID: %s, PosAuthCode: %s, BaseURL: %s, Language: %s}",
		c.PosID, secret, c.DefaultBaseURL(), c.Language)
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	VINTI4_POS_ID          – merchant terminal id (required)
//	VINTI4_POS_AUTH_CODE   – shared secret (required)
//	VINTI4_BASE_URL        – optional endpoint override
//	VINTI4_LANGUAGE        – pt (default), en or fr
//	VINTI4_RESPONSE_URL    – optional default callback URL
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

// LoadConfigFromFile reads a YAML, JSON or TOML file (picked by extension)
// and lets VINTI4_* environment variables override its values.
func LoadConfigFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(expandHome(path), &cfg); err != nil {
		desc, _ := cleanenv.GetDescription(&cfg, nil)
		return Config{}, fmt.Errorf("vinti4net: load config: %w; %s", err, desc)
	}
	return cfg, nil
}

func configFromEnv() Config {
	lang := os.Getenv("VINTI4_LANGUAGE")
	if lang == "" {
		lang = "pt"
	}

	return Config{
		PosID:       os.Getenv("VINTI4_POS_ID"),
		PosAuthCode: os.Getenv("VINTI4_POS_AUTH_CODE"),
		BaseURL:     os.Getenv("VINTI4_BASE_URL"),
		Language:    lang,
		ResponseURL: os.Getenv("VINTI4_RESPONSE_URL"),
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
