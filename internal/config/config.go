package config

import "os"

// Config holds everything the gateway reads from the environment.
// godotenv is loaded in main before this runs, so a .env file and real
// environment variables are interchangeable.
type Config struct {
	// APIURL is the upstream maintenance API base URL.
	APIURL string
	// AppHost is the listen address passed to gin.
	AppHost string
	// TrustRequestIDHeader reuses an inbound X-Request-ID when true.
	TrustRequestIDHeader bool
}

func Load() Config {
	return Config{
		APIURL:               getEnv("API_URL", "http://localhost:8000"),
		AppHost:              getEnv("APP_HOST", ":3000"),
		TrustRequestIDHeader: os.Getenv("TRUST_REQUEST_ID_HEADER") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
