package config

import "os"

type Config struct {
	HTTPAddr      string
	DBPath        string
	UploadDir     string
	SessionSecret string
	JWTSecret     string
	AdminUser     string
	AdminPass     string
	GelfAddr      string
}

func Load() *Config {
	return &Config{
		HTTPAddr:      ":" + getEnv("PORT", "4000"),
		DBPath:        getEnv("SABRON_DB_PATH", "./submissions.db"),
		UploadDir:     getEnv("SABRON_UPLOAD_DIR", "./uploads"),
		SessionSecret: getEnv("SABRON_SESSION_SECRET", "sabron-dev-secret-change-me"),
		JWTSecret:     getEnv("SABRON_JWT_SECRET", "sabron-jwt-secret-change-me"),
		AdminUser:     getEnv("SABRON_ADMIN_USER", "sabron"),
		AdminPass:     getEnv("SABRON_ADMIN_PASS", "sabronwamudha1"),
		GelfAddr:      getEnv("SABRON_GELF_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
