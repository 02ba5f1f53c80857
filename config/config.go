package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	Workdir string `mapstructure:"workdir"`
	Sheets  Sheets `mapstructure:"sheets"`
	API     API    `mapstructure:"api"`
}

type Sheets struct {
	Credentials string `mapstructure:"credentials"`
	URL         string `mapstructure:"url"`
	Preferences string `mapstructure:"preferences"`
	Plan        string `mapstructure:"plan"`
}

// API is the meal planning web API configuration.
type API struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

const (
	DefaultAPI         = "https://api.spoonacular.com/mealplanner/generate"
	DefaultPreferences = "Preferences!A1:D2"
	DefaultPlan        = "Meal Plan!A1:G"
	DefaultTimeout     = 30 * time.Second
)

// Load reads the configuration from defaults, the optional configuration file and
// the MEALPLAN_ environment variables (in increasing order of precedence). A .env
// file in the current directory is loaded into the environment first.
func Load(file string, workdir string, credentials string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file (%w)", err)
	}

	v := viper.New()

	v.SetDefault("workdir", workdir)
	v.SetDefault("sheets.credentials", credentials)
	v.SetDefault("sheets.url", "")
	v.SetDefault("sheets.preferences", DefaultPreferences)
	v.SetDefault("sheets.plan", DefaultPlan)
	v.SetDefault("api.url", DefaultAPI)
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", DefaultTimeout)

	v.SetEnvPrefix("MEALPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		if _, err := os.Stat(file); err == nil {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading configuration file %v (%w)", file, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration (%w)", err)
	}

	return &cfg, nil
}
