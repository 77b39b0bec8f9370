// Package config loads plugingen's generator settings from plugingen.toml,
// with PLUGINGEN_* environment variables taking precedence.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/plugingen/errors"
)

// Config holds the generator settings.
type Config struct {
	// Packages are the package patterns scanned for plugingen directives.
	Packages []string `mapstructure:"packages" toml:"packages"`

	// Output is the root directory generated factory files are written
	// under, mirroring each owning package's import path.
	Output string `mapstructure:"output" toml:"output"`

	// Providers is the directory provider entries are recorded in.
	Providers string `mapstructure:"providers" toml:"providers"`

	// JSONLogs switches logging to structured JSON output.
	JSONLogs bool `mapstructure:"json_logs" toml:"json_logs"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Packages:  []string{"./..."},
		Output:    "gen",
		Providers: "gen/providers",
		JSONLogs:  false,
	}
}

// Load reads plugingen.toml from dir (the working directory when empty).
// A missing file is not an error; defaults apply.
func Load(dir string) (Config, error) {
	if dir == "" {
		dir = "."
	}

	v := viper.New()
	v.SetConfigName("plugingen")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("PLUGINGEN")
	v.AutomaticEnv()

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read plugingen.toml")
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse plugingen.toml")
	}
	return cfg, nil
}

// Write encodes cfg as TOML at path. Used by "plugingen config init" to
// scaffold a project.
func Write(cfg Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
