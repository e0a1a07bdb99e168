package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	DSN string `yaml:"url"`
}

type JWTConfig struct {
	Secret          string `yaml:"secret"`
	AccessTTLHours  int    `yaml:"access_ttl_hours"`
	RefreshTTLHours int    `yaml:"refresh_ttl_hours"`
}

type CookieConfig struct {
	AccessName  string `yaml:"access_name"`
	RefreshName string `yaml:"refresh_name"`
	Domain      string `yaml:"domain"`
	Secure      *bool  `yaml:"secure"`
	SameSite    string `yaml:"same_site"` // Strict, Lax or None
}

type RecommendationConfig struct {
	EligibleStatuses []string `yaml:"eligible_statuses"`
	Limit            int      `yaml:"limit"`
	CacheTTLMinutes  int      `yaml:"cache_ttl_minutes"`
}

type LoginThrottleConfig struct {
	MaxAttempts  int `yaml:"max_attempts"`
	BlockMinutes int `yaml:"block_minutes"`
}

type SeedConfig struct {
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
	DemoData      bool   `yaml:"demo_data"`
}

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	JWT            JWTConfig            `yaml:"jwt"`
	Cookies        CookieConfig         `yaml:"cookies"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	LoginThrottle  LoginThrottleConfig  `yaml:"login_throttle"`
	Seed           SeedConfig           `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig reads config.yaml (or CONFIG_PATH) unless DATABASE_URL is set,
// in which case environment variables win. Defaults are applied either way.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.AccessTTLHours == 0 {
		cfg.JWT.AccessTTLHours = 24
	}
	if cfg.JWT.RefreshTTLHours == 0 {
		cfg.JWT.RefreshTTLHours = 7 * 24
	}
	if cfg.Cookies.AccessName == "" {
		cfg.Cookies.AccessName = "SB_ACCESS"
	}
	if cfg.Cookies.RefreshName == "" {
		cfg.Cookies.RefreshName = "SB_REFRESH"
	}
	if cfg.Cookies.Secure == nil {
		secure := true
		cfg.Cookies.Secure = &secure
	}
	if cfg.Cookies.SameSite == "" {
		cfg.Cookies.SameSite = "Strict"
	}
	if len(cfg.Recommendation.EligibleStatuses) == 0 {
		cfg.Recommendation.EligibleStatuses = []string{"ACTIVE"}
	}
	if cfg.Recommendation.Limit == 0 {
		cfg.Recommendation.Limit = 5
	}
	if cfg.Recommendation.CacheTTLMinutes == 0 {
		cfg.Recommendation.CacheTTLMinutes = 5
	}
	if cfg.LoginThrottle.MaxAttempts == 0 {
		cfg.LoginThrottle.MaxAttempts = 5
	}
	if cfg.LoginThrottle.BlockMinutes == 0 {
		cfg.LoginThrottle.BlockMinutes = 30
	}
}

func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLHours) * time.Hour
}

func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLHours) * time.Hour
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
