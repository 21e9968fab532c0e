package config

import "os"

// PathEnv names the environment variable holding an optional config override file.
const PathEnv = "ASTEROIDS_CONFIG"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FromEnv loads the configuration, overlaying the file named by PathEnv if set.
func FromEnv() (*Config, error) {
	return Load(GetEnv(PathEnv, ""))
}
