package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"stargaze-api/internal/models"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvFile    = ".env"

	ProviderOpenWeather = "openweather"
	ProviderOpenMeteo   = "open-meteo"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Weather WeatherConfig `yaml:"weather"`
	ISS     ISSConfig     `yaml:"iss"`
	NASA    NASAConfig    `yaml:"nasa"`
	Cache   CacheConfig   `yaml:"cache"`
	Sentry  SentryConfig  `yaml:"sentry"`
	Watch   WatchConfig   `yaml:"watch"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type WeatherConfig struct {
	APIs []WeatherAPIConfig `yaml:"apis" ignored:"true"`
	// OpenWeatherAPIKey lets the key come from the environment instead of the YAML file.
	OpenWeatherAPIKey string `yaml:"-" envconfig:"OPENWEATHER_API_KEY"`
}

type WeatherAPIConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	// Timeout is the request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

type ISSConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout int    `yaml:"timeout" envconfig:"TIMEOUT"`
}

type NASAConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	APIKey  string `yaml:"api_key" envconfig:"API_KEY"`
	Timeout int    `yaml:"timeout" envconfig:"TIMEOUT"`
}

// CacheConfig configures the Redis observation cache. An empty Addr disables caching.
type CacheConfig struct {
	Addr       string `yaml:"addr" envconfig:"ADDR"`
	Password   string `yaml:"password" envconfig:"PASSWORD"`
	DB         int    `yaml:"db" envconfig:"DB"`
	TTLSeconds int    `yaml:"ttl_seconds" envconfig:"TTL_SECONDS"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

// WatchConfig drives the periodic assessment of fixed locations. No locations disables it.
type WatchConfig struct {
	Cron      string          `yaml:"cron" envconfig:"CRON"`
	Locations []WatchLocation `yaml:"locations" ignored:"true"`
}

type WatchLocation struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"lat"`
	Longitude float64 `yaml:"lon"`
}

func (w WatchLocation) Coordinate() models.Coordinate {
	return models.Coordinate{Latitude: w.Latitude, Longitude: w.Longitude}
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file, an optional .env file and the environment, in that order.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envFile: DefaultEnvFile,
	}
}

// NewConfig loads the configuration from CONFIG_FILE, or config/config.yaml when unset.
func NewConfig() (*Config, error) {
	path := DefaultConfigPath
	if p, ok := os.LookupEnv("CONFIG_FILE"); ok && p != "" {
		path = p
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := godotenv.Load(p.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", p.envFile, err)
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	// PORT is what most container platforms inject
	if _, ok := os.LookupEnv("SERVER_PORT"); !ok {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cnf.Server.Port = port
		}
	}

	if key := strings.TrimSpace(cnf.Weather.OpenWeatherAPIKey); key != "" {
		for i := range cnf.Weather.APIs {
			if cnf.Weather.APIs[i].Name == ProviderOpenWeather {
				cnf.Weather.APIs[i].APIKey = key
			}
		}
	}

	return cnf, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	if strings.TrimSpace(cnf.App.Name) == "" {
		return errors.New("app.name is required")
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		return errors.New("server.port is required")
	}
	if cnf.Server.ReadTimeout < 0 || cnf.Server.WriteTimeout < 0 || cnf.Server.IdleTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}

	switch strings.ToLower(cnf.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cnf.Log.Level)
	}
	switch strings.ToLower(cnf.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is not one of json, console", cnf.Log.Format)
	}

	for i, api := range cnf.Weather.APIs {
		switch api.Name {
		case ProviderOpenWeather:
			if strings.TrimSpace(api.APIKey) == "" {
				return fmt.Errorf("weather.apis[%d]: api_key is required for %s", i, api.Name)
			}
		case ProviderOpenMeteo:
		default:
			return fmt.Errorf("weather.apis[%d]: unknown provider %q", i, api.Name)
		}
		if api.Timeout < 0 {
			return fmt.Errorf("weather.apis[%d]: timeout must not be negative", i)
		}
	}

	if cnf.Cache.TTLSeconds < 0 {
		return errors.New("cache.ttl_seconds must not be negative")
	}

	for i, loc := range cnf.Watch.Locations {
		if strings.TrimSpace(loc.Name) == "" {
			return fmt.Errorf("watch.locations[%d]: name is required", i)
		}
		if !loc.Coordinate().Valid() {
			return fmt.Errorf("watch.locations[%d]: coordinate out of range", i)
		}
	}
	if len(cnf.Watch.Locations) > 0 && strings.TrimSpace(cnf.Watch.Cron) == "" {
		return errors.New("watch.cron is required when watch.locations is set")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

// SentryZone maps the app environment onto the zone names the Sentry hook forwards for.
func (c *Config) SentryZone() string {
	switch c.App.Env {
	case "production":
		return "prod"
	case "development":
		return "dev"
	default:
		return c.App.Env
	}
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "stargaze-api",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		ISS: ISSConfig{
			BaseURL: "https://api.open-notify.org/iss-pass.json",
			Timeout: 10,
		},
		NASA: NASAConfig{
			BaseURL: "https://api.nasa.gov/planetary/apod",
			APIKey:  "DEMO_KEY",
			Timeout: 10,
		},
		Cache: CacheConfig{
			TTLSeconds: 600,
		},
		Watch: WatchConfig{
			Cron: "0 8,12,16,20 * * *",
		},
	}
}
