package repository

import "os"

// getenvDefault reads an env var, falling back to def when unset or empty.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
