package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	BaseURL       string
	DatabaseDSN   string
	CloudinaryURL string
	AccessSecret  string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:    getEnv("SERVER_PORT", ":3000"),
		BaseURL:       getEnv("BASE_URL", "*"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		AccessSecret:  os.Getenv("ACCESS_SECRET"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "registration.created"),
		KafkaGroupID:  os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getEnv("ADMIN_NAME", "Admin UKM Basket"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
