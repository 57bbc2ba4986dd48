package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Data file paths, one JSON collection per entity kind.
	DataDir      string
	UsersFile    string
	AccountsFile string
	ShowingsFile string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		DataDir:      dataDir,
		UsersFile:    filepath.Join(dataDir, getEnv("USERS_FILE", "user.json")),
		AccountsFile: filepath.Join(dataDir, getEnv("BANK_FILE", "bank.json")),
		ShowingsFile: filepath.Join(dataDir, getEnv("SHOWINGS_FILE", "showings.json")),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/cinematicket.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
