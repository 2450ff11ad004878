package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort              int    `json:"server_port"`
	JWTSecretKey            string `json:"jwt_secret_key"`
	JWTExpirationHours      int    `json:"jwt_expiration_hours"`
	DefaultRateLimit        int    `json:"default_rate_limit"`
	GlobalRateLimit         int    `json:"global_rate_limit"`
	SiteScheme              string `json:"site_scheme"`
	Debug                   bool   `json:"debug"`
	StrictStatusTransitions bool   `json:"strict_status_transitions"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per restaurant
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	siteScheme := os.Getenv("SITE_SCHEME")
	if siteScheme == "" {
		siteScheme = "http"
	}

	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))

	// Strict transition checking is on unless explicitly disabled; lenient
	// mode preserves the legacy "any enumerated status is accepted" behavior
	// for staff corrections.
	strict := true
	if v := os.Getenv("STRICT_STATUS_TRANSITIONS"); v != "" {
		strict, _ = strconv.ParseBool(v)
	}

	return &Config{
		ServerPort:              serverPort,
		JWTSecretKey:            os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours:      jwtExpirationHours,
		DefaultRateLimit:        defaultRateLimit,
		GlobalRateLimit:         globalRateLimit,
		SiteScheme:              siteScheme,
		Debug:                   debug,
		StrictStatusTransitions: strict,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
