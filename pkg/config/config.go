package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every environment-supplied setting, loaded once at startup
// and passed explicitly to whatever needs it.
type Config struct {
	Port     string
	MongoURI string
	DBName   string

	JWTSecretKey string
	MachineID    uint16

	S3Endpoint    string
	S3AccessKeyID string
	S3SecretKey   string
	S3Bucket      string
	S3PublicURL   string
	S3PathStyle   bool
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// Missing .env is fine, real deployments export variables directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        getEnv("DB_NAME", "elearning"),
		JWTSecretKey:  os.Getenv("JWT_SECRET_KEY"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID: os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Bucket:      getEnv("S3_BUCKET", "course-assets"),
		S3PublicURL:   os.Getenv("S3_PUBLIC_URL"),
		S3PathStyle:   os.Getenv("S3_PATH_STYLE") == "true",
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is not set")
	}

	machineID, err := strconv.Atoi(getEnv("MACHINE_ID", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid MACHINE_ID: %w", err)
	}
	cfg.MachineID = uint16(machineID)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
