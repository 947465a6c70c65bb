package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	DATA_DIR=./data/companies
//	CORS_ALLOW_ORIGINS=*
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Dataset DatasetConfig // static dataset location
	CORS    CORSConfig    // cross-origin settings for browser frontends
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// DatasetConfig points at the directory of per-company JSON files loaded at
// startup.
type DatasetConfig struct {
	Dir string
}

// CORSConfig lists the origins allowed to call the API from a browser.
// "*" allows any origin.
type CORSConfig struct {
	AllowOrigins []string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of re-reading environment variables.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file (if present).
//  3. Environment variables.
//
// Missing required values terminate the process via validateConfig().
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATA_DIR", "./data/companies")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Dataset: DatasetConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitOrigins(viper.GetString("CORS_ALLOW_ORIGINS")),
		},
	}

	validateConfig()
}

// splitOrigins turns a comma-separated origin list into a slice, dropping
// empty entries.
func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Dataset.Dir == "" {
		missing = append(missing, "DATA_DIR")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
