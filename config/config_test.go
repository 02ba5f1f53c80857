package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load("", "/var/mealplan", "/etc/mealplan/credentials.json")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.Workdir != "/var/mealplan" {
			t.Errorf("Expected Workdir to be '/var/mealplan', got '%s'", cfg.Workdir)
		}
		if cfg.Sheets.Credentials != "/etc/mealplan/credentials.json" {
			t.Errorf("Expected Credentials to be '/etc/mealplan/credentials.json', got '%s'", cfg.Sheets.Credentials)
		}
		if cfg.Sheets.Preferences != DefaultPreferences {
			t.Errorf("Expected Preferences to be '%s', got '%s'", DefaultPreferences, cfg.Sheets.Preferences)
		}
		if cfg.Sheets.Plan != DefaultPlan {
			t.Errorf("Expected Plan to be '%s', got '%s'", DefaultPlan, cfg.Sheets.Plan)
		}
		if cfg.API.URL != DefaultAPI {
			t.Errorf("Expected API URL to be '%s', got '%s'", DefaultAPI, cfg.API.URL)
		}
		if cfg.API.Timeout != DefaultTimeout {
			t.Errorf("Expected API timeout to be %v, got %v", DefaultTimeout, cfg.API.Timeout)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "missing.yaml")

		if _, err := Load(file, "", ""); err != nil {
			t.Fatalf("Expected no error for missing configuration file, got %v", err)
		}
	})

	t.Run("File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "mealplan.yaml")
		yaml := `
sheets:
  url: https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
  plan: "Weekly!B2:H"
api:
  key: file_key
  timeout: 5s
`
		if err := os.WriteFile(file, []byte(yaml), 0644); err != nil {
			t.Fatalf("Error writing configuration file (%v)", err)
		}

		cfg, err := Load(file, "", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.Sheets.URL != "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" {
			t.Errorf("Incorrect spreadsheet URL '%s'", cfg.Sheets.URL)
		}
		if cfg.Sheets.Plan != "Weekly!B2:H" {
			t.Errorf("Expected Plan to be 'Weekly!B2:H', got '%s'", cfg.Sheets.Plan)
		}
		if cfg.Sheets.Preferences != DefaultPreferences {
			t.Errorf("Expected Preferences to be '%s', got '%s'", DefaultPreferences, cfg.Sheets.Preferences)
		}
		if cfg.API.Key != "file_key" {
			t.Errorf("Expected API key to be 'file_key', got '%s'", cfg.API.Key)
		}
		if cfg.API.Timeout != 5*time.Second {
			t.Errorf("Expected API timeout to be 5s, got %v", cfg.API.Timeout)
		}
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("MEALPLAN_API_KEY", "env_key")
		t.Setenv("MEALPLAN_SHEETS_PREFERENCES", "Settings!A1:D2")

		file := filepath.Join(t.TempDir(), "mealplan.yaml")
		if err := os.WriteFile(file, []byte("api:\n  key: file_key\n"), 0644); err != nil {
			t.Fatalf("Error writing configuration file (%v)", err)
		}

		cfg, err := Load(file, "", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.API.Key != "env_key" {
			t.Errorf("Expected API key to be 'env_key', got '%s'", cfg.API.Key)
		}
		if cfg.Sheets.Preferences != "Settings!A1:D2" {
			t.Errorf("Expected Preferences to be 'Settings!A1:D2', got '%s'", cfg.Sheets.Preferences)
		}
	})

	t.Run("DotEnv", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MEALPLAN_API_URL=http://localhost:8080/generate\n"), 0644); err != nil {
			t.Fatalf("Error writing .env file (%v)", err)
		}

		t.Chdir(dir)
		t.Cleanup(func() { os.Unsetenv("MEALPLAN_API_URL") })

		cfg, err := Load("", "", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if cfg.API.URL != "http://localhost:8080/generate" {
			t.Errorf("Expected API URL to be 'http://localhost:8080/generate', got '%s'", cfg.API.URL)
		}
	})

	t.Run("InvalidFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "mealplan.yaml")
		if err := os.WriteFile(file, []byte("api: [key: \n"), 0644); err != nil {
			t.Fatalf("Error writing configuration file (%v)", err)
		}

		if _, err := Load(file, "", ""); err == nil {
			t.Fatal("Expected an error for invalid configuration file, got nil")
		}
	})
}
