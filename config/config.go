package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	DatabaseDSN    string
	JWTSecret      string
	JWTAlgorithm   string
	JWTExpiryHours int
	KafkaBroker    string
	KafkaTopic     string
	KafkaUsername  string
	KafkaPassword  string
	CORSOrigins    string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:     getEnv("SERVER_PORT", ":3000"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTAlgorithm:   getEnv("JWT_ALGORITHM", "HS256"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 2),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		KafkaTopic:     os.Getenv("KAFKA_TOPIC"),
		KafkaUsername:  os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:  os.Getenv("KAFKA_PASSWORD"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
	}

	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
