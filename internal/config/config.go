package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable the config reads,
// e.g. SNAKEQUIZ_CATALOG or SNAKEQUIZ_LOG_LEVEL.
const EnvPrefix = "SNAKEQUIZ"

// Config is the resolved runtime configuration.
type Config struct {
	// Catalog is a path to a catalog YAML file. Empty uses the built-in bank.
	Catalog string `mapstructure:"catalog"`

	// Seed fixes the shuffle order. Zero seeds from the clock.
	Seed int64 `mapstructure:"seed"`

	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type MetricsConfig struct {
	// Addr is the host:port the metrics endpoint listens on. Empty disables it.
	Addr string `mapstructure:"addr"`
}

// flagKeys maps config keys to the persistent flag names that override them.
var flagKeys = map[string]string{
	"catalog":      "catalog",
	"seed":         "seed",
	"log.file":     "log-file",
	"log.level":    "log-level",
	"metrics.addr": "metrics-addr",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/snakequiz/config.yaml)")
	fs.String("catalog", "", "Path to a catalog YAML file (default: built-in questions)")
	fs.Int64("seed", 0, "Shuffle seed for reproducible question order (0 = random)")
	fs.String("log-file", "", "Path to the log file (default $XDG_STATE_HOME/snakequiz/snakequiz.log)")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.String("metrics-addr", "", "Serve Prometheus metrics on host:port (disabled when empty)")
}

// Load resolves the configuration from flags, SNAKEQUIZ_* environment
// variables, the config file and defaults, in that order of priority.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		configFile, _ = flags.GetString("config")
	}
	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}

	file, err := readConfigFile(v, configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = file

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readConfigFile reads path into v. An explicit path must exist; the default
// path is optional. It returns the file that was read, or "".
func readConfigFile(v *viper.Viper, path string) (string, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return "", nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read config %s: %w", path, err)
	}
	return path, nil
}

func setDefaults(v *viper.Viper) error {
	logPath, err := DefaultLogPath()
	if err != nil {
		return err
	}

	v.SetDefault("catalog", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log.file", logPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("metrics.addr", "")
	return nil
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.File == "" {
		errs = append(errs, errors.New("log.file: must not be empty"))
	}
	if c.Log.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb: must be positive, got %d", c.Log.MaxSizeMB))
	}
	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			errs = append(errs, fmt.Errorf("metrics.addr: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/snakequiz/config.yaml, falling
// back to ~/.config.
func DefaultConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "snakequiz", "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/snakequiz/snakequiz.log, falling
// back to ~/.local/state.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "snakequiz", "snakequiz.log"), nil
}

func xdgDir(env, fallback string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
