package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level codecompass configuration.
type Config struct {
	OutputDir  string  `mapstructure:"output_dir"`
	ReportName string  `mapstructure:"report_name"`
	Output     Output  `mapstructure:"output"`
	History    History `mapstructure:"history"`
	Doc        Doc     `mapstructure:"doc"`
}

// Output defines console output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// History controls recording of scan runs.
type History struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// Doc configures the documentation service.
type Doc struct {
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	BaseURL   string `mapstructure:"base_url"`
	Suffix    string `mapstructure:"suffix"`
}

// APIKey returns the credential from the configured environment variable.
func (d Doc) APIKey() string {
	return os.Getenv(d.APIKeyEnv)
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location),
// applies CODECOMPASS_* environment overrides and returns a Config with all
// defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("report_name", DefaultReportName)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("doc.model", DefaultDoc.Model)
	v.SetDefault("doc.api_key_env", DefaultDoc.APIKeyEnv)
	v.SetDefault("doc.base_url", "")
	v.SetDefault("doc.suffix", DefaultDoc.Suffix)

	v.SetEnvPrefix("codecompass")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.OutputDir = expandPath(cfg.OutputDir)
	cfg.History.DBPath = expandPath(cfg.History.DBPath)
	if cfg.Doc.Suffix == "" {
		cfg.Doc.Suffix = DefaultDoc.Suffix
	}

	return &cfg, nil
}
