package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// fileConfig mirrors the keys accepted in an mdr config file. Values act
// as defaults; command line flags always win.
type fileConfig struct {
	Theme          string `mapstructure:"theme"`
	Width          int    `mapstructure:"width"`
	OSC8           string `mapstructure:"osc8"`
	LineNumbers    bool   `mapstructure:"line_numbers"`
	CodeBackground bool   `mapstructure:"code_background"`
	ForceColor     bool   `mapstructure:"force_color"`
	SoftWrap       bool   `mapstructure:"soft_wrap"`
}

// resolveConfigPath picks the config file to load. An explicit --config
// path wins, then .mdr.toml in the working directory, then the XDG
// config directory. Empty means no config file.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return normalizePath(explicit)
	}
	if _, err := os.Stat(".mdr.toml"); err == nil {
		return ".mdr.toml"
	}
	dir, err := configDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// configDir returns the XDG config directory for mdr.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config.
func configDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "mdr"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mdr"), nil
}

func loadFileConfig(path string) (fileConfig, error) {
	v := viper.New()
	v.SetDefault("theme", defaultThemeName)
	v.SetDefault("width", 0)
	v.SetDefault("osc8", "auto")
	v.SetDefault("line_numbers", true)
	v.SetDefault("code_background", false)
	v.SetDefault("force_color", false)
	v.SetDefault("soft_wrap", false)

	var cfg fileConfig
	if path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
