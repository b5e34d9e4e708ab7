package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	// Identity holds settings for verifying bearer tokens issued by the
	// external identity provider.
	Identity struct {
		Secret string `yaml:"secret" env:"IDENTITY_SECRET"`
		Issuer string `yaml:"issuer" env:"IDENTITY_ISSUER"`
	} `yaml:"identity"`

	Scraper struct {
		// BaseURL is the site origin used to absolutize relative URLs.
		BaseURL string `yaml:"base_url" env:"SCRAPER_BASE_URL"`
		// FacultyURL is the directory page scraped by the browser and
		// static strategies.
		FacultyURL string `yaml:"faculty_url" env:"SCRAPER_FACULTY_URL"`
		// APIEndpoints are candidate structured endpoints probed first.
		APIEndpoints []string `yaml:"api_endpoints"`
		// RequestTimeout bounds each plain HTTP fetch.
		RequestTimeout string `yaml:"request_timeout" env:"SCRAPER_REQUEST_TIMEOUT"`
		// BrowserTimeout bounds the rendered-DOM strategy.
		BrowserTimeout string `yaml:"browser_timeout" env:"SCRAPER_BROWSER_TIMEOUT"`
		// SelectorsFile optionally overrides the built-in selector tables.
		SelectorsFile string `yaml:"selectors_file" env:"SCRAPER_SELECTORS_FILE"`
	} `yaml:"scraper"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional YAML file, .env file and
// environment variables, in that order of precedence (env wins).
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "profscope"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Identity.Issuer = "profscope.app"

	config.Scraper.BaseURL = "https://iub.ac.bd"
	config.Scraper.FacultyURL = "https://iub.ac.bd/faculties"
	config.Scraper.APIEndpoints = []string{
		"https://iub.ac.bd/api/faculties",
		"https://iub.ac.bd/api/faculty",
		"https://iub.ac.bd/wp-json/wp/v2/faculty",
		"https://iub.ac.bd/wp-json/custom/v1/faculty",
	}
	config.Scraper.RequestTimeout = "30s"
	config.Scraper.BrowserTimeout = "60s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Identity.Secret == "" {
		return fmt.Errorf("identity secret is required")
	}
	if config.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper base URL is required")
	}
	if _, err := time.ParseDuration(config.Scraper.RequestTimeout); err != nil {
		return fmt.Errorf("invalid scraper request timeout: %w", err)
	}
	if _, err := time.ParseDuration(config.Scraper.BrowserTimeout); err != nil {
		return fmt.Errorf("invalid scraper browser timeout: %w", err)
	}
	return nil
}

// GetPostgresConnectionString returns the pgx connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// RequestTimeout returns the parsed scraper HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Scraper.RequestTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// BrowserTimeout returns the parsed rendered-DOM strategy timeout.
func (c *Config) BrowserTimeout() time.Duration {
	d, err := time.ParseDuration(c.Scraper.BrowserTimeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}
