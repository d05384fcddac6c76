package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds process-level defaults read from the environment.
// CLI flags override these values.
type Env struct {
	DBPath   string
	FPS      int
	LogLevel string
	SSHAddr  string
	DataDir  string
}

// LoadEnv reads .env files (default ".env") if present, then the process
// environment. Existing environment variables are never overwritten.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		//nolint:errcheck // A missing .env file is normal
		godotenv.Load(f)
	}

	return Env{
		DBPath:   getEnv("ARCADE_DB", "~/.arcade/scores.db"),
		FPS:      getEnvInt("ARCADE_FPS", 60),
		LogLevel: getEnv("ARCADE_LOG_LEVEL", "info"),
		SSHAddr:  getEnv("ARCADE_SSH_ADDR", ":23234"),
		DataDir:  getEnv("ARCADE_DATA_DIR", "~/.arcade"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
