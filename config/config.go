package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	ServerPort    string
	GinMode       string
)

// AllowedOrigins is the fixed list of front-end addresses allowed to call the API
var AllowedOrigins = []string{
	"https://chess-main.vercel.app",
	"https://chessdemo-alpha.vercel.app",
	"https://chessdemo-l3qrzgj5q-ramyas-projects-4cb2348e.vercel.app",
	"https://chess-main-git-main-ramyas-projects-4cb2348e.vercel.app",
	"http://localhost:3000",
}

// LoadConfig reads the configuration from the environment, with .env support for local development
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	MongoDatabase = getEnv("MONGO_DB", "chessclub")
	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	ServerPort = getEnv("PORT", "8080")
	GinMode = getEnv("GIN_MODE", "debug")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
