package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    HTTPServer    `yaml:"http_server"`
	Relay         Relay         `yaml:"relay"`
	Signer        Signer        `yaml:"signer"`
	Query         Query         `yaml:"query"`
	Notifications Notifications `yaml:"notifications"`
	Database      Database      `yaml:"database"`
	SMTP          SMTP          `yaml:"smtp"`
	RateLimit     RateLimit     `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type RelayPreset struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Relay selects the relay the client talks to. An empty URL runs the
// planner against an in-process relay.
type Relay struct {
	URL            string        `yaml:"url" env:"RELAY_URL"`
	Presets        []RelayPreset `yaml:"presets"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env-default:"10s"`
}

type Signer struct {
	SecretKey string `yaml:"secret_key" env:"NOSTR_SECRET_KEY"`
}

type Query struct {
	DefaultLimit int `yaml:"default_limit" env-default:"20"`
}

type Notifications struct {
	Enabled       bool          `yaml:"enabled" env:"NOTIFICATIONS_ENABLED"`
	Schedule      string        `yaml:"schedule" env-default:"@every 1m"`
	LeadHours     []int         `yaml:"lead_hours" env-default:"24,1"`
	Tolerance     time.Duration `yaml:"tolerance" env-default:"5m"`
	Cooldown      time.Duration `yaml:"cooldown" env-default:"1h"`
	WatchInterval time.Duration `yaml:"watch_interval" env-default:"30s"`
	FeedSize      int           `yaml:"feed_size" env-default:"50"`
	Store         Store         `yaml:"store"`
}

type Store struct {
	Driver string `yaml:"driver" env-default:"file"`
	Path   string `yaml:"path" env-default:"./data/notifications.yaml"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"event_planner"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type SMTP struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" env-default:"587"`
	Username string `yaml:"username"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env-default:"30"`
	Burst             int `yaml:"burst" env-default:"10"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	for _, h := range c.Notifications.LeadHours {
		if h <= 0 {
			return fmt.Errorf("notifications.lead_hours must be positive, got %d", h)
		}
	}

	switch c.Notifications.Store.Driver {
	case "file", "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown notification store driver %q", c.Notifications.Store.Driver)
	}

	return nil
}

// fetchConfigPath reads the -config flag, falling back to CONFIG_PATH.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
