// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads omnisearch settings from a YAML file, OMNISEARCH_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/omnisearch/pkg/types"
)

const (
	// AppName names the config file, config directory and env prefix.
	AppName = "omnisearch"

	DefaultMusicEndpoint = "https://itunes.apple.com/search"
	DefaultMusicRelay    = "https://api.allorigins.win/raw"
	DefaultCodeEndpoint  = "https://api.github.com/search/repositories"
	DefaultServeAddr     = "127.0.0.1:8787"
)

// Dir returns the per-user directory holding the config file and database.
// It falls back to ./.omnisearch when no user config dir exists.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(base, AppName)
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper, version string) {
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("http.user_agent", AppName+"/"+version)
	v.SetDefault("music.endpoint", DefaultMusicEndpoint)
	v.SetDefault("music.relay_url", DefaultMusicRelay)
	v.SetDefault("code.endpoint", DefaultCodeEndpoint)
	v.SetDefault("storage.driver", string(types.DriverBolt))
	v.SetDefault("storage.path", filepath.Join(Dir(), AppName+".db"))
	v.SetDefault("voice.command", []string{})
	v.SetDefault("voice.auto_listen_delay", 500*time.Millisecond)
	v.SetDefault("drag.pointer_distance", 8.0)
	v.SetDefault("drag.touch_delay", 250*time.Millisecond)
	v.SetDefault("drag.touch_tolerance", 5.0)
	v.SetDefault("serve.addr", DefaultServeAddr)
}

// Prepare points v at the config file. An explicit cfgFile wins; otherwise
// omnisearch.yaml is looked up in the working directory and then in Dir().
func Prepare(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the config file if one exists and decodes v into a Config.
// A missing file is not an error. The returned string is the file used, if any.
func Load(v *viper.Viper) (types.Config, string, error) {
	var cfg types.Config

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, "", fmt.Errorf("reading config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, used, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, used, err
	}
	return cfg, used, nil
}

// Validate rejects settings no component can work with.
func Validate(cfg types.Config) error {
	switch cfg.Storage.Driver {
	case types.DriverBolt, types.DriverSQLite, types.DriverMemory:
	default:
		return fmt.Errorf("storage.driver %q: use bolt, sqlite or memory", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver != types.DriverMemory && cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the %s driver", cfg.Storage.Driver)
	}
	if cfg.Drag.PointerDistance < 0 || cfg.Drag.TouchTolerance < 0 || cfg.Drag.TouchDelay < 0 {
		return fmt.Errorf("drag thresholds must not be negative")
	}
	return nil
}
