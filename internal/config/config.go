package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	Env        string `mapstructure:"env"`
	Mode       string `mapstructure:"mode"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

type DatabaseConfig struct {
	DSN     string `mapstructure:"dsn"`
	LogMode bool   `mapstructure:"log_mode"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Static   StaticConfig   `mapstructure:"static"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load reads configuration from an optional YAML file (default "config.yaml"
// in the working directory) with environment variables taking precedence.
// A missing file is fine; every key has a default.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		v.SetDefault("server.port", 8080)
		v.SetDefault("server.env", "development")
		v.SetDefault("server.mode", "")
		v.SetDefault("server.cors_origin", "http://localhost:5173")
		// Local default used when no DSN is supplied
		v.SetDefault("database.dsn", "root:@tcp(127.0.0.1:3306)/retail_ledger?charset=utf8mb4&parseTime=True&loc=Local")
		v.SetDefault("database.log_mode", false)
		v.SetDefault("static.dir", "./web")

		// conventional env names, e.g. PORT=9000 or DB_DSN=...
		_ = v.BindEnv("server.port", "PORT")
		_ = v.BindEnv("server.env", "APP_ENV")
		_ = v.BindEnv("server.cors_origin", "CORS_ORIGIN")
		_ = v.BindEnv("database.dsn", "DB_DSN")
		_ = v.BindEnv("static.dir", "STATIC_DIR")

		if readErr := v.ReadInConfig(); readErr != nil {
			if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
				err = fmt.Errorf("read config: %w", readErr)
				return
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
