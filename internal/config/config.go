package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultRoot = "./data"
	DefaultQuit = `\q`
)

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Root         string       `mapstructure:"root"`          // storage directory
	QuitSequence string       `mapstructure:"quit_sequence"` // typed at the end of the buffer to leave
	MaxListed    int          `mapstructure:"max_listed"`    // candidates drawn under the prompt
	Theme        string       `mapstructure:"theme"`         // "default" or "plain"
	LogLevel     string       `mapstructure:"log_level"`     // debug|info|warn|error
	Notify       NotifyConfig `mapstructure:"notify"`
}

func Default() Config {
	return Config{
		Root:         DefaultRoot,
		QuitSequence: DefaultQuit,
		MaxListed:    10,
		Theme:        "default",
		LogLevel:     "warn",
		Notify:       NotifyConfig{Enabled: false},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tlog", "config.yaml"), nil
}

// Load reads the YAML config file, TLOG_* environment variables and any
// changed flags in flags, in increasing order of precedence. An empty file
// means the default path, which may be missing; an explicit file must exist.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()

	explicit := file != ""
	if !explicit {
		if p, err := xdgConfigPath(); err == nil {
			file = p
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	}
	v.SetEnvPrefix("TLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("root", cfg.Root)
	v.SetDefault("quit_sequence", cfg.QuitSequence)
	v.SetDefault("max_listed", cfg.MaxListed)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)

	if flags != nil {
		if f := flags.Lookup("root"); f != nil {
			if err := v.BindPFlag("root", f); err != nil {
				return cfg, fmt.Errorf("bind root flag: %w", err)
			}
		}
	}

	if file != "" {
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize
	cfg.Root = strings.TrimSpace(cfg.Root)
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	if cfg.MaxListed <= 0 {
		cfg.MaxListed = Default().MaxListed
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	return cfg, nil
}

// Level is LogLevel as a slog level; unknown names mean warn.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return l
}
