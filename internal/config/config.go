// Package config loads converter settings from YAML and the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/extract"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the converter.
type Config struct {
	Engine   string          `yaml:"engine"`
	Parallel bool            `yaml:"parallel"`
	Output   OutputConfig    `yaml:"output"`
	Log      LogConfig       `yaml:"log"`
	Watch    WatchConfig     `yaml:"watch"`
	Lexicon  extract.Lexicon `yaml:"lexicon"`
}

// OutputConfig controls JSON serialization.
type OutputConfig struct {
	Pretty *bool `yaml:"pretty"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_ms"`
}

// PrettyOutput reports whether output should be indented (default true).
func (c *Config) PrettyOutput() bool {
	return c.Output.Pretty == nil || *c.Output.Pretty
}

// FullLexicon returns the default keyword tables extended with the
// configured ones.
func (c *Config) FullLexicon() extract.Lexicon {
	return extract.DefaultLexicon().Extend(c.Lexicon)
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// A .env file in the working directory is read first if present. An empty
// path skips the YAML file.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	if engine := os.Getenv("WORKOUTCONV_ENGINE"); engine != "" {
		cfg.Engine = engine
	}
	if parallel := os.Getenv("WORKOUTCONV_PARALLEL"); parallel != "" {
		if b, err := strconv.ParseBool(parallel); err == nil {
			cfg.Parallel = b
		}
	}
	if level := os.Getenv("WORKOUTCONV_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("WORKOUTCONV_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Engine == "" {
		cfg.Engine = "ooxml"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Watch.DebounceMillis == 0 {
		cfg.Watch.DebounceMillis = 500
	}
}
