package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything the binaries read at startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

// ServerConfig holds the listen addresses of the three servers.
type ServerConfig struct {
	Host        string
	HTTPPort    int // Port for the REST facade
	GRPCPort    int // Port for the gRPC facade
	MetricsPort int // Port for Prometheus metrics HTTP server
}

// AuthConfig holds the authorization policy knobs.
type AuthConfig struct {
	// AdminRoles lists the role IDs whose holders pass the admin check.
	// Parsed from the comma-separated ADMIN_ROLES key.
	AdminRoles []string
}

// LogConfig holds the logging knobs.
type LogConfig struct {
	Format string // "text" or "json"
}

// DatabaseConfig holds the PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// findProjectRoot walks up from the working directory until it sees
// go.mod, so .env files resolve no matter where a binary or test runs.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// InitConfig points viper at .env.{env} in the project root and sets
// defaults. The file is optional; real environment variables always win.
func InitConfig(env string) error {
	if env == "" {
		env = "dev"
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}

	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(projectRoot)

	// Missing .env files are fine; defaults and the environment cover it.
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("HTTP_PORT", 8080)
	viper.SetDefault("GRPC_PORT", 50051)
	viper.SetDefault("METRICS_PORT", 9090)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 15432)
	viper.SetDefault("DB_USER", "banken")
	viper.SetDefault("DB_NAME", "banken_dev")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("ADMIN_ROLES", "admin")
	viper.SetDefault("LOG_FORMAT", "text")

	return nil
}

// Load materializes the Config from whatever InitConfig gathered. The
// database password has no default and must come from the environment.
func Load() (*Config, error) {
	dbPassword := viper.GetString("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required (set via environment variable or .env file)")
	}

	config := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("SERVER_HOST"),
			HTTPPort:    viper.GetInt("HTTP_PORT"),
			GRPCPort:    viper.GetInt("GRPC_PORT"),
			MetricsPort: viper.GetInt("METRICS_PORT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: dbPassword,
			Database: viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Auth: AuthConfig{
			AdminRoles: parseAdminRoles(viper.GetString("ADMIN_ROLES")),
		},
		Log: LogConfig{
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	return config, nil
}

// parseAdminRoles splits the comma-separated ADMIN_ROLES value. Blank
// entries are dropped so "admin,,ops" yields two roles.
func parseAdminRoles(value string) []string {
	var roles []string
	for _, part := range strings.Split(value, ",") {
		role := strings.TrimSpace(part)
		if role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}

// ConnectionString renders the lib/pq keyword DSN.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
