package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Nickgiresse/aurastyle/internal/platform/config"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	profile := t.TempDir()
	t.Setenv("AURA_API_URL", "")

	cfg, err := config.New(profile)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000" {
		t.Errorf("api url = %q", cfg.APIURL)
	}
	if cfg.WhatsAppPhone != "237690021434" {
		t.Errorf("whatsapp phone = %q", cfg.WhatsAppPhone)
	}
	if cfg.DBPath != filepath.Join(profile, "aura.db") {
		t.Errorf("db path = %q", cfg.DBPath)
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	profile := t.TempDir()
	t.Setenv("AURA_API_URL", "")
	writeConfig(t, profile, "api_url: https://api.aurastyle.cm\nwhatsapp_phone: \"237699000000\"\n")

	cfg, err := config.New(profile)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIURL != "https://api.aurastyle.cm" {
		t.Errorf("api url = %q", cfg.APIURL)
	}
	if cfg.WhatsAppPhone != "237699000000" {
		t.Errorf("whatsapp phone = %q", cfg.WhatsAppPhone)
	}
}

func TestPartialConfigFileKeepsRemainingDefaults(t *testing.T) {
	profile := t.TempDir()
	t.Setenv("AURA_API_URL", "")
	writeConfig(t, profile, "api_url: https://api.aurastyle.cm\n")

	cfg, err := config.New(profile)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.WhatsAppPhone != "237690021434" {
		t.Errorf("whatsapp phone default lost: %q", cfg.WhatsAppPhone)
	}
}

func TestEnvironmentWinsOverConfigFile(t *testing.T) {
	profile := t.TempDir()
	writeConfig(t, profile, "api_url: https://api.aurastyle.cm\n")
	t.Setenv("AURA_API_URL", "http://staging:5000")

	cfg, err := config.New(profile)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIURL != "http://staging:5000" {
		t.Errorf("environment did not win: %q", cfg.APIURL)
	}
}

func TestMalformedConfigFileFails(t *testing.T) {
	profile := t.TempDir()
	t.Setenv("AURA_API_URL", "")
	writeConfig(t, profile, "api_url: [broken\n")

	if _, err := config.New(profile); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestEmptyProfilePathRejected(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatal("empty profile path accepted")
	}
}

func writeConfig(t *testing.T, profile, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(profile, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
