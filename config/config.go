package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, Postgres connection details and calendar behavior.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=licitacal
//	POSTGRES_SSLMODE=disable
//	POSTGRES_CONNECT_RETRIES=5
//	CALENDAR_FALLBACK_GENERATED=true
//	CALENDAR_SEED_FROM=2024
//	CALENDAR_SEED_TO=2030
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Calendar CalendarConfig // Holiday source and seeding settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - ConnectRetries: how many times the initial ping is retried with backoff.
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	ConnectRetries int
	URL            string
}

// CalendarConfig controls where timeline computations get their holidays.
//
// Fields:
//   - FallbackGenerated: when a year has no stored feriados, use the
//     generated Chilean holidays for that year instead of an empty list.
//   - SeedFrom / SeedTo: default year range for --mode seed.
type CalendarConfig struct {
	FallbackGenerated bool
	SeedFrom          int
	SeedTo            int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "licitacal")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("POSTGRES_CONNECT_RETRIES", 5)

	viper.SetDefault("CALENDAR_FALLBACK_GENERATED", true)
	viper.SetDefault("CALENDAR_SEED_FROM", 2024)
	viper.SetDefault("CALENDAR_SEED_TO", 2030)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:           viper.GetString("POSTGRES_HOST"),
			Port:           viper.GetInt("POSTGRES_PORT"),
			User:           viper.GetString("POSTGRES_USER"),
			Password:       viper.GetString("POSTGRES_PASSWORD"),
			DBName:         viper.GetString("POSTGRES_DB"),
			SSLMode:        viper.GetString("POSTGRES_SSLMODE"),
			ConnectRetries: viper.GetInt("POSTGRES_CONNECT_RETRIES"),
		},
		Calendar: CalendarConfig{
			FallbackGenerated: viper.GetBool("CALENDAR_FALLBACK_GENERATED"),
			SeedFrom:          viper.GetInt("CALENDAR_SEED_FROM"),
			SeedTo:            viper.GetInt("CALENDAR_SEED_TO"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the postgres:// connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Calendar.SeedFrom > AppConfig.Calendar.SeedTo {
		missing = append(missing, "CALENDAR_SEED_FROM<=CALENDAR_SEED_TO")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
