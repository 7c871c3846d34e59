package config

import "os"

// Environment-derived configuration, loaded once at startup.
// godotenv is loaded in main before Init is called.
var (
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	ClientUrl       string
	ListenAddr      string
	DefaultPassword string
)

// Init reads all configuration values from the environment
func Init() {
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "hackathon")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "dev-secret-change-me")

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")
	ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
