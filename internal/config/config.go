package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath   string
	InMemory       bool
	InitScriptPath string
	LogLevel       string
	Environment    string
}

// LoadConfig reads an optional .env file and then the process environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config := &Config{}

	config.DatabasePath = getEnvWithDefault("DATABASE_PATH", "./jobsearch.db")
	config.InitScriptPath = os.Getenv("INIT_SCRIPT_PATH")
	config.LogLevel = getEnvWithDefault("LOG_LEVEL", "INFO")
	config.Environment = getEnvWithDefault("ENVIRONMENT", "development")

	inMemory, err := strconv.ParseBool(getEnvWithDefault("DATABASE_IN_MEMORY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_IN_MEMORY: %v", err)
	}
	config.InMemory = inMemory

	if config.InitScriptPath != "" {
		if _, err := os.Stat(config.InitScriptPath); err != nil {
			return nil, fmt.Errorf("INIT_SCRIPT_PATH is not readable: %w", err)
		}
	}

	return config, nil
}

// StorePath is the path handed to database.Open; empty means in memory
func (c *Config) StorePath() string {
	if c.InMemory {
		return ""
	}
	return c.DatabasePath
}

// IsProduction reports whether ENVIRONMENT names a production deployment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
