package config

import "os"

// Config holds all service configuration, loaded from the environment
// with development defaults.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	JWTSecret    string
	HostUsername string
	HostPassword string

	// ProfileCacheSeconds bounds how long a synthesized profile is
	// served from Redis before being recomputed.
	ProfileCacheSeconds int
	// FeedCacheHours bounds the ranked feed cache.
	FeedCacheHours int
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "trademate"),
		RedisAddr:     getEnvOrDefault("REDIS_URI", "localhost:6379"),

		JWTSecret:    getEnvOrDefault("JWT_SECRET", "dev-secret-change-in-production"),
		HostUsername: getEnvOrDefault("HOST_USERNAME", "admin"),
		HostPassword: getEnvOrDefault("HOST_PASSWORD", "password123"),

		ProfileCacheSeconds: 60,
		FeedCacheHours:      24,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
