package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the jobgrid API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Listing  ListingConfig  `yaml:"listing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ListingConfig holds the read-only listing catalog: visibility statuses,
// facet bucket definitions, location handling, and result-size defaults.
// Loaded once at startup; aggregators receive it as an immutable catalog.
type ListingConfig struct {
	VisibleStatuses  []string               `yaml:"visible_statuses"`
	LocationPrefixes []string               `yaml:"location_prefixes"`
	SalaryBands      []SalaryBandConfig     `yaml:"salary_bands"`
	SizeBuckets      []SizeBucketConfig     `yaml:"size_buckets"`
	Locations        []LocationPointConfig  `yaml:"locations"`
	SuggestTake      int                    `yaml:"suggest_take"`
	SectionTechs     int                    `yaml:"section_techs"`
	DefaultPageSize  int                    `yaml:"default_page_size"`
	MaxPageSize      int                    `yaml:"max_page_size"`
}

// SalaryBandConfig defines one predefined salary facet band.
// Max <= 0 means unbounded above.
type SalaryBandConfig struct {
	Key   string  `yaml:"key"`
	Label string  `yaml:"label"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// SizeBucketConfig defines one company-size bucket label.
type SizeBucketConfig struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// LocationPointConfig maps a location name to map coordinates.
type LocationPointConfig struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if len(c.Listing.VisibleStatuses) == 0 {
		c.Listing.VisibleStatuses = []string{"active"}
	}
	if len(c.Listing.LocationPrefixes) == 0 {
		c.Listing.LocationPrefixes = []string{"office", "city", "гр."}
	}
	if len(c.Listing.SalaryBands) == 0 {
		c.Listing.SalaryBands = []SalaryBandConfig{
			{Key: "0-1500", Label: "Up to 1 500", Min: 0, Max: 1500},
			{Key: "1500-3000", Label: "1 500 – 3 000", Min: 1500, Max: 3000},
			{Key: "3000-5000", Label: "3 000 – 5 000", Min: 3000, Max: 5000},
			{Key: "5000+", Label: "Over 5 000", Min: 5000, Max: 0},
		}
	}
	if len(c.Listing.SizeBuckets) == 0 {
		c.Listing.SizeBuckets = []SizeBucketConfig{
			{Key: "micro", Label: "1-9 employees"},
			{Key: "small", Label: "10-49 employees"},
			{Key: "medium", Label: "50-249 employees"},
			{Key: "large", Label: "250+ employees"},
		}
	}
	if c.Listing.SuggestTake <= 0 {
		c.Listing.SuggestTake = 8
	}
	if c.Listing.SectionTechs <= 0 {
		c.Listing.SectionTechs = 6
	}
	if c.Listing.DefaultPageSize <= 0 {
		c.Listing.DefaultPageSize = 20
	}
	if c.Listing.MaxPageSize <= 0 {
		c.Listing.MaxPageSize = 100
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	seen := make(map[string]struct{}, len(c.Listing.SalaryBands))
	for _, band := range c.Listing.SalaryBands {
		if band.Key == "" {
			return fmt.Errorf("listing.salary_bands entries require a key")
		}
		if _, dup := seen[band.Key]; dup {
			return fmt.Errorf("listing.salary_bands has duplicate key %q", band.Key)
		}
		seen[band.Key] = struct{}{}
		if band.Max > 0 && band.Max <= band.Min {
			return fmt.Errorf("listing.salary_bands.%s: max must exceed min", band.Key)
		}
	}
	for _, b := range c.Listing.SizeBuckets {
		if b.Key == "" {
			return fmt.Errorf("listing.size_buckets entries require a key")
		}
	}
	for _, p := range c.Listing.Locations {
		if p.Name == "" {
			return fmt.Errorf("listing.locations entries require a name")
		}
		if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
			return fmt.Errorf("listing.locations.%s: coordinates out of range", p.Name)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
