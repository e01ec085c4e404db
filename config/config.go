// Package config loads the settings from an ini file, a .env file, BLOG_* environment variables and command line overrides, in this order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

type Config struct {
	Server    Server    `ini:"server"`
	Database  Database  `ini:"database"`
	Session   Session   `ini:"session"`
	Log       Log       `ini:"log"`
	RateLimit RateLimit `ini:"ratelimit"`
}

type Server struct {
	Listen       string        `ini:"listen"`
	Base         string        `ini:"base"` // prefix which the reverse proxy does not strip
	ReadTimeout  time.Duration `ini:"read-timeout"`
	WriteTimeout time.Duration `ini:"write-timeout"`
}

type Database struct {
	URL          string `ini:"url"` // see github.com/xo/dburl
	MaxOpenConns int    `ini:"max-open-conns"`
}

type Session struct {
	Store       string        `ini:"store"` // "sql" or "redis"
	RedisURL    string        `ini:"redis-url"`
	IdleTimeout time.Duration `ini:"idle-timeout"`
	Lifetime    time.Duration `ini:"lifetime"`
	Secure      bool          `ini:"secure"`
}

type Log struct {
	Level  string `ini:"level"`
	Format string `ini:"format"` // "console" or "json"
}

type RateLimit struct {
	AuthPerMinute int `ini:"auth-per-minute"` // login and signup submissions per client ip
	AuthBurst     int `ini:"auth-burst"`
}

// Keys lists all settings as "section.key".
var Keys = []string{
	"server.listen",
	"server.base",
	"server.read-timeout",
	"server.write-timeout",
	"database.url",
	"database.max-open-conns",
	"session.store",
	"session.redis-url",
	"session.idle-timeout",
	"session.lifetime",
	"session.secure",
	"log.level",
	"log.format",
	"ratelimit.auth-per-minute",
	"ratelimit.auth-burst",
}

func Default() *Config {
	return &Config{
		Server: Server{
			Listen:       "127.0.0.1:8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: Database{
			URL:          "sqlite3:blog.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared",
			MaxOpenConns: 16,
		},
		Session: Session{
			Store:       "sql",
			IdleTimeout: 12 * time.Hour,
			Lifetime:    720 * time.Hour,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		RateLimit: RateLimit{
			AuthPerMinute: 10,
			AuthBurst:     5,
		},
	}
}

// EnvName returns the name of the environment variable for a key, e.g. BLOG_SERVER_READ_TIMEOUT for "server.read-timeout".
func EnvName(key string) string {
	return "BLOG_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// Load reads the ini file at path (if not empty), the .env file in the working directory (if it exists) and the environment.
// Overrides take precedence. Their keys must be in Keys.
func Load(path string, overrides map[string]string) (*Config, error) {

	var file = ini.Empty()
	if path != "" {
		var err error
		file, err = ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// doesn't overwrite variables which are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	for _, key := range Keys {
		if value, ok := os.LookupEnv(EnvName(key)); ok {
			set(file, key, value)
		}
	}

	for key, value := range overrides {
		if !known(key) {
			return nil, fmt.Errorf("unknown config key: %s", key)
		}
		set(file, key, value)
	}

	var cfg = Default()
	if err := file.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, cfg.validate()
}

func set(file *ini.File, key, value string) {
	section, name, _ := strings.Cut(key, ".")
	file.Section(section).Key(name).SetValue(value)
}

func known(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (cfg *Config) validate() error {

	cfg.Server.Base = strings.Trim(cfg.Server.Base, "/")
	if cfg.Server.Base != "" {
		cfg.Server.Base = "/" + cfg.Server.Base
	}

	switch cfg.Session.Store {
	case "sql":
	case "redis":
		if cfg.Session.RedisURL == "" {
			return errors.New("session.store is redis, but session.redis-url is empty")
		}
	default:
		return fmt.Errorf("unknown session store: %s", cfg.Session.Store)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %s", cfg.Log.Format)
	}

	if cfg.RateLimit.AuthPerMinute <= 0 || cfg.RateLimit.AuthBurst <= 0 {
		return errors.New("ratelimit values must be positive")
	}

	return nil
}
