package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"transport-data-service/pkg/errs"
)

// Profile names
const (
	ProfileLocal  = "local"
	ProfileDocker = "docker"
)

// Profile is one named database configuration bundle. Selecting a profile is
// the only environment-style input the access layer takes.
type Profile struct {
	Name     string
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
}

// DSN renders the profile as a PostgreSQL connection string
func (p Profile) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		p.Host, p.Port, p.DBName, p.User, p.Password)
}

// WithDBName returns a copy of the profile pointing at another database on
// the same server. The flat client-record table lives in its own database
// so it never collides with the relational clients table.
func (p Profile) WithDBName(dbName string) Profile {
	p.DBName = dbName
	return p
}

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Metrics/health server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Databases
	ActiveProfile string
	RecordsDBName string
	Profiles      map[string]Profile
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		ActiveProfile: getEnv("DB_PROFILE", ProfileLocal),
		RecordsDBName: getEnv("RECORDS_DB_NAME", "recordsdb"),
		Profiles: map[string]Profile{
			ProfileLocal: {
				Name:     ProfileLocal,
				Host:     getEnv("LOCAL_DB_HOST", "127.0.0.1"),
				Port:     getEnvAsInt("LOCAL_DB_PORT", 5432),
				DBName:   getEnv("LOCAL_DB_NAME", "transportdb"),
				User:     getEnv("LOCAL_DB_USER", "transport"),
				Password: getEnv("LOCAL_DB_PASSWORD", "transport"),
			},
			// Docker publishes the containerized database on an alternate
			// host port.
			ProfileDocker: {
				Name:     ProfileDocker,
				Host:     getEnv("DOCKER_DB_HOST", "127.0.0.1"),
				Port:     getEnvAsInt("DOCKER_DB_PORT", 5433),
				DBName:   getEnv("DOCKER_DB_NAME", "transportdb"),
				User:     getEnv("DOCKER_DB_USER", "transport"),
				Password: getEnv("DOCKER_DB_PASSWORD", "transport"),
			},
		},
	}

	return config, nil
}

// ProfileByName resolves a profile name; an unknown name is a validation
// error, not a connection attempt.
func (c *Config) ProfileByName(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, &errs.ValidationError{
			Field:   "profile",
			Message: fmt.Sprintf("unknown database profile %q", name),
		}
	}
	return p, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
