package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultListTTLSec  = 30
	defaultLogLevel    = "info"
	defaultTimeZone    = "UTC"
	defaultDisplayKey  = "blogDisplayMode"
	defaultListingPath = "/blogs"
	defaultAvatarURL   = "https://api.dicebear.com/7.x/initials/svg"
	defaultWPM         = 200
)

type Config struct {
	Server       Server
	Database     Database
	Cache        Cache
	Presentation Presentation
	LogLevel     string `validate:"oneof=trace debug info warn warning error fatal panic"`
}

type Server struct {
	Address        string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`
}

type Database struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Pass     string
	Name     string `validate:"required"`
	TimeZone string `validate:"required"`
}

type Cache struct {
	Host    string `validate:"required"`
	Port    string `validate:"required,numeric"`
	Pass    string
	DB      int           `validate:"gte=0"`
	ListTTL time.Duration `validate:"gt=0"`
}

// Presentation holds the tunables of the derived display values. It may be
// overridden by the YAML file named in PRESENTATION_CONFIG.
type Presentation struct {
	WordsPerMinute int    `yaml:"words_per_minute" validate:"gte=1"`
	AvatarBaseURL  string `yaml:"avatar_base_url" validate:"required,url"`
	ListingPath    string `yaml:"listing_path" validate:"required,startswith=/"`
	DisplayModeKey string `yaml:"display_mode_key" validate:"required"`
}

// LoadDotEnv loads .env files with priority: .env.local > .env.
// OS env vars always win since godotenv never overwrites them.
func LoadDotEnv() []string {
	candidates := []string{".env.local", ".env"}
	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		if err := godotenv.Load(loaded...); err != nil {
			logrus.Warnf("failed to load %v: %v", loaded, err)
		}
	}
	return loaded
}

// Load reads the configuration from the environment, applies the optional
// presentation overlay and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Address:        getEnv("SERVER_ADDRESS", defaultAddress),
			ContextTimeout: time.Duration(getEnvInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		},
		Database: Database{
			Host:     os.Getenv("DATABASE_HOST"),
			Port:     os.Getenv("DATABASE_PORT"),
			User:     os.Getenv("DATABASE_USER"),
			Pass:     os.Getenv("DATABASE_PASS"),
			Name:     os.Getenv("DATABASE_NAME"),
			TimeZone: getEnv("DATABASE_TZ", defaultTimeZone),
		},
		Cache: Cache{
			Host:    os.Getenv("CACHE_HOST"),
			Port:    os.Getenv("CACHE_PORT"),
			Pass:    os.Getenv("CACHE_PASS"),
			DB:      getEnvInt("CACHE_DB", defaultCacheDB),
			ListTTL: time.Duration(getEnvInt("CACHE_LIST_TTL", defaultListTTLSec)) * time.Second,
		},
		Presentation: Presentation{
			WordsPerMinute: getEnvInt("WORDS_PER_MINUTE", defaultWPM),
			AvatarBaseURL:  getEnv("AVATAR_BASE_URL", defaultAvatarURL),
			ListingPath:    getEnv("LISTING_PATH", defaultListingPath),
			DisplayModeKey: getEnv("DISPLAY_MODE_KEY", defaultDisplayKey),
		},
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
	}

	if path := os.Getenv("PRESENTATION_CONFIG"); path != "" {
		if err := cfg.Presentation.overlay(path); err != nil {
			return nil, err
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// overlay replaces the fields set in the YAML file at path.
func (p *Presentation) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// DSN builds the MySQL data source name.
func (d Database) DSN() (string, error) {
	loc, err := time.LoadLocation(d.TimeZone)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_TZ %q: %w", d.TimeZone, err)
	}
	c := mysqlDriver.NewConfig()
	c.User = d.User
	c.Passwd = d.Pass
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(d.Host, d.Port)
	c.DBName = d.Name
	c.ParseTime = true
	c.Loc = loc
	return c.FormatDSN(), nil
}

func (c Cache) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("failed to parse %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
