package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Speech   SpeechConfig
	Rooms    RoomsConfig
	Storage  StorageConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string
	Env  string
	// DebugErrors gates internal error detail in 500 responses; never enabled
	// in production.
	DebugErrors bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	EnforceExpiry bool
	// UniqueEmailScope is "global" (email unique across companies and
	// candidates) or "per-kind" (unique within each entity kind only).
	UniqueEmailScope string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey string
}

type SpeechConfig struct {
	SynthesizeURL string
	TranscribeURL string
	APIKey        string
	Timeout       time.Duration
}

type RoomsConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency      int
	RetryMaxAttempts int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Using environment values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "5000"),
			Env:         getEnv("ENV", "development"),
			DebugErrors: getEnvAsBool("DEBUG_ERRORS", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "gradeup_db"),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "change-me"),
			TokenTTL:         getEnvAsDuration("TOKEN_TTL", "24h"),
			EnforceExpiry:    getEnvAsBool("AUTH_ENFORCE_EXPIRY", true),
			UniqueEmailScope: getEnv("UNIQUE_EMAIL_SCOPE", "global"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", "http://localhost:6333"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "gradeup_vacancies"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Speech: SpeechConfig{
			SynthesizeURL: getEnv("SPEECH_SYNTHESIZE_URL", ""),
			TranscribeURL: getEnv("SPEECH_TRANSCRIBE_URL", ""),
			APIKey:        getEnv("SPEECH_API_KEY", ""),
			Timeout:       getEnvAsDuration("SPEECH_TIMEOUT", "30s"),
		},
		Rooms: RoomsConfig{
			APIURL:  getEnv("ROOMS_API_URL", ""),
			APIKey:  getEnv("ROOMS_API_KEY", ""),
			Timeout: getEnvAsDuration("ROOMS_TIMEOUT", "30s"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency:      getEnvAsInt("WORKER_CONCURRENCY", 3),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
