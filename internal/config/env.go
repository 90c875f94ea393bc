package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// dotEnvFiles lists the env files LoadDotEnv looks for, highest priority first.
var dotEnvFiles = []string{".env.local", ".env"}

// GetSecret retrieves a secret with multiple fallback sources.
// Priority:
//  1. Direct environment variable (e.g., DB_PASSWORD)
//  2. File path from _FILE environment variable (e.g., DB_PASSWORD_FILE)
//  3. Default value
//
// The _FILE form lets Docker secrets (/run/secrets/...) feed the same settings.
func GetSecret(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}

	if filePath := os.Getenv(envVar + "_FILE"); filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	return defaultValue
}

// LoadDotEnv loads .env.local and .env from dir when present. Variables that
// are already set in the process environment are never overridden, and a
// missing file is not an error. It returns the files that were loaded.
func LoadDotEnv(dir string) ([]string, error) {
	var files []string
	for _, name := range dotEnvFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return nil, nil
	}
	if err := godotenv.Load(files...); err != nil {
		return nil, err
	}
	return files, nil
}
