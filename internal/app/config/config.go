// Package config собирает настройки сервиса из INI-файла, флагов и окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/ini.v1"
)

const (
	DefaultServerAddress = "localhost:5000"
	DefaultConfigFile    = "config.ini"
	DefaultLogLevel      = "info"

	// Section — секция INI-файла с настройками сокращателя.
	Section = "URLShortener"
)

var ErrMissingSetting = errors.New("missing required setting")

type ConfigType struct {
	ServerAddress string `env:"SERVER_ADDRESS"`
	DatabaseFile  string `env:"DATABASE_FILE"`
	WebsiteURL    string `env:"WEBSITE_URL"`
	LogLevel      string `env:"LOG_LEVEL"`
	ConfigFile    string
}

// NewConfig применяет источники по возрастанию приоритета:
// значения по умолчанию, INI-файл, явно заданные флаги, переменные окружения.
func NewConfig(args []string) (*ConfigType, error) {
	config := &ConfigType{
		ServerAddress: DefaultServerAddress,
		LogLevel:      DefaultLogLevel,
		ConfigFile:    DefaultConfigFile,
	}

	flags := *config
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigFile, "c", DefaultConfigFile, "INI config file path")
	fs.StringVar(&flags.ServerAddress, "a", DefaultServerAddress, "HTTP server address")
	fs.StringVar(&flags.DatabaseFile, "d", "", "JSON database file path")
	fs.StringVar(&flags.WebsiteURL, "b", "", "shorten URL base address")
	fs.StringVar(&flags.LogLevel, "l", DefaultLogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	config.ConfigFile = flags.ConfigFile
	if err := config.loadINI(set["c"]); err != nil {
		return nil, err
	}

	if set["a"] {
		config.ServerAddress = flags.ServerAddress
	}
	if set["d"] {
		config.DatabaseFile = flags.DatabaseFile
	}
	if set["b"] {
		config.WebsiteURL = flags.WebsiteURL
	}
	if set["l"] {
		config.LogLevel = flags.LogLevel
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if config.DatabaseFile == "" {
		return nil, fmt.Errorf("%w: database_file", ErrMissingSetting)
	}
	if config.WebsiteURL == "" {
		return nil, fmt.Errorf("%w: website_url", ErrMissingSetting)
	}

	return config, nil
}

// loadINI читает секцию Section. Отсутствие файла по пути по умолчанию
// не считается ошибкой.
func (c *ConfigType) loadINI(required bool) error {
	if _, err := os.Stat(c.ConfigFile); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config file %s: %w", c.ConfigFile, err)
	}

	file, err := ini.Load(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", c.ConfigFile, err)
	}

	section := file.Section(Section)
	if v := section.Key("database_file").String(); v != "" {
		c.DatabaseFile = v
	}
	if v := section.Key("website_url").String(); v != "" {
		c.WebsiteURL = v
	}
	if v := section.Key("server_address").String(); v != "" {
		c.ServerAddress = v
	}
	if v := section.Key("log_level").String(); v != "" {
		c.LogLevel = v
	}
	return nil
}
