package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string // Application port
	DBUser          string // Database user
	DBPassword      string // Database password
	DBHost          string // Database host
	DBPort          string // Database port
	DBName          string // Database name
	JWTSecret       string // JWT secret key for the admin API
	RedisAddr       string // Redis server address
	RedisPass       string // Redis password
	RedisDB         int    // Redis database number
	SessionTTLHours int    // Server-side session lifetime in hours
	UploadDir       string // Directory for stored uploads
	MediaBaseURL    string // Public URL prefix for stored uploads
	SMTPAddr        string // SMTP relay address (host:port)
	SMTPFrom        string // Sender address for notification mail
	PYUSDAddress    string // Platform PYUSD receiving address shown to depositors
	PYUSDNote       string // Optional note shown alongside the receiving address
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	sessionTTL, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 24 // Default session lifetime
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "media"
	}
	mediaBase := os.Getenv("MEDIA_BASE_URL")
	if mediaBase == "" {
		mediaBase = "/media"
	}
	return &Config{
		AppPort:         os.Getenv("APP_PORT"),          // Application port
		DBUser:          os.Getenv("DB_USER"),           // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:          os.Getenv("DB_HOST"),           // Database host
		DBPort:          os.Getenv("DB_PORT"),           // Database port
		DBName:          os.Getenv("DB_NAME"),           // Database name
		JWTSecret:       os.Getenv("JWT_SECRET"),        // JWT secret key
		RedisAddr:       os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:         redisDB,                        // Redis database number
		SessionTTLHours: sessionTTL,                     // Session lifetime
		UploadDir:       uploadDir,                      // Upload directory
		MediaBaseURL:    mediaBase,                      // Upload URL prefix
		SMTPAddr:        os.Getenv("SMTP_ADDR"),         // SMTP relay address
		SMTPFrom:        os.Getenv("SMTP_FROM"),         // Notification sender
		PYUSDAddress:    os.Getenv("PYUSD_ADDRESS"),     // PYUSD receiving address
		PYUSDNote:       os.Getenv("PYUSD_NOTE"),        // Receiving address note
		IsProd:          os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
