package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL        = "http://localhost:5000"
	defaultWhatsAppPhone = "237690021434"
)

type Config struct {
	ProfilePath   string
	DBPath        string
	APIURL        string
	WhatsAppPhone string
}

type fileConfig struct {
	APIURL        string `yaml:"api_url"`
	WhatsAppPhone string `yaml:"whatsapp_phone"`
}

// New resolves the profile directory and layers config.yaml and the
// AURA_API_URL environment variable over the built-in defaults.
func New(profilePath string) (Config, error) {
	if profilePath == "" {
		return Config{}, fmt.Errorf("profile path is required")
	}
	cfg := Config{
		ProfilePath:   profilePath,
		DBPath:        filepath.Join(profilePath, "aura.db"),
		APIURL:        defaultAPIURL,
		WhatsAppPhone: defaultWhatsAppPhone,
	}

	raw, err := os.ReadFile(filepath.Join(profilePath, "config.yaml"))
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
		if fc.APIURL != "" {
			cfg.APIURL = fc.APIURL
		}
		if fc.WhatsAppPhone != "" {
			cfg.WhatsAppPhone = fc.WhatsAppPhone
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	if env := os.Getenv("AURA_API_URL"); env != "" {
		cfg.APIURL = env
	}
	return cfg, nil
}

// DefaultProfilePath is ~/.aura, falling back to .aura in the working
// directory when the home directory cannot be resolved.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aura"
	}
	return filepath.Join(home, ".aura")
}
