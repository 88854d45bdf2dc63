package config

import (
	"log"
	"os"
	"strconv"
)

// GetEnv fetches a key or returns an empty string. Keys without a sensible
// fallback (secrets, DSNs) go through this one so the missing value is logged.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	log.Printf("Critical: Environment variable %s not set\n", key)
	return ""
}

// GetEnvAsStr fetches a key or returns the fallback value.
func GetEnvAsStr(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvAsInt fetches a key as an integer or returns the fallback value.
// With ensurePositive set, zero and negative values also fall back, which
// keeps durations and intervals sane.
func GetEnvAsInt(key string, fallback int, ensurePositive bool) int {
	if valueStr, ok := os.LookupEnv(key); ok {
		if value, err := strconv.Atoi(valueStr); err == nil {
			if ensurePositive && value <= 0 {
				log.Printf("Warning: Environment variable %s is not positive, using fallback value\n", key)
				return fallback
			}
			return value
		}
		log.Printf("Warning: Environment variable %s is not an integer, using fallback value\n", key)
	}
	return fallback
}
