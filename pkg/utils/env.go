package utils

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env files into the process environment. Variables that are
// already set win; missing files are ignored.
func LoadEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		_ = godotenv.Load(f)
	}
}

func GetEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
