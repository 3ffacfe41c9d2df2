package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Env  string
	Host string
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
}

type AuthConfig struct {
	// AllowPlaintext enables the legacy plain-text password comparison for
	// accounts that predate hashing. Off unless a migration explicitly needs it.
	AllowPlaintext bool
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Auth     AuthConfig
}

var instance *Config

// Load reads .env (when present) and the process environment. Connection
// defaults apply only outside production; production refuses to start without
// explicit credentials and a session secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("AUTH_ALLOW_PLAINTEXT", false)

	cfg := &Config{
		Server: ServerConfig{
			Env:  v.GetString("SERVER_ENV"),
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
		},
		Auth: AuthConfig{
			AllowPlaintext: v.GetBool("AUTH_ALLOW_PLAINTEXT"),
		},
	}

	if cfg.IsProduction() {
		if cfg.Session.Secret == "" {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required in production")
		}
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "ella-rises-dev-secret"
	}

	instance = cfg
	return cfg, nil
}

func Get() *Config { return instance }

func GetSafe() (*Config, bool) {
	if instance == nil {
		return nil, false
	}
	return instance, true
}

func (c *Config) IsProduction() bool  { return c.Server.Env == "production" }
func (c *Config) IsDevelopment() bool { return c.Server.Env == "development" }
