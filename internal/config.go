package internal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/tuannm99/novarow/internal/record"
	"github.com/tuannm99/novarow/internal/storage"
)

type NovaRowConfig struct {
	AppName string `mapstructure:"app_name"`

	Storage struct {
		PageSize int `mapstructure:"page_size"`
		MaxPages int `mapstructure:"max_pages"`
	} `mapstructure:"storage"`

	Repl struct {
		Prompt      string `mapstructure:"prompt"`
		HistoryFile string `mapstructure:"history_file"`
	} `mapstructure:"repl"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "novarow")
	v.SetDefault("storage.page_size", storage.PageSize)
	v.SetDefault("storage.max_pages", storage.TableMaxPages)
	v.SetDefault("repl.prompt", "db > ")
	v.SetDefault("repl.history_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads a yaml file on top of the defaults. An empty path means defaults only.
// NOVAROW_* env vars override both, e.g. NOVAROW_STORAGE_MAX_PAGES=10.
func LoadConfig(path string) (*NovaRowConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("novarow")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg NovaRowConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if _, err := cfg.Layout(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Layout is the validated page layout for the users table.
func (c *NovaRowConfig) Layout() (storage.Layout, error) {
	l := storage.Layout{
		PageSize: c.Storage.PageSize,
		MaxPages: c.Storage.MaxPages,
		RowSize:  record.RowSize,
	}
	if err := l.Validate(); err != nil {
		return storage.Layout{}, err
	}
	return l, nil
}

func (c *NovaRowConfig) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
