package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	FrontendURL string

	LibreTranslateURL    string
	LibreTranslateAPIKey string
	MyMemoryURL          string

	GroqAPIKey string
	GroqModel  string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017/translator-app"),
		DBName:      getEnv("DB_NAME", "translator-app"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		LibreTranslateURL:    getEnv("LIBRETRANSLATE_URL", "https://libretranslate.de/translate"),
		LibreTranslateAPIKey: os.Getenv("LIBRETRANSLATE_API_KEY"),
		MyMemoryURL:          getEnv("MYMEMORY_URL", "https://api.mymemory.translated.net/get"),

		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
		GroqModel:  getEnv("GROQ_MODEL", "llama-3.1-70b-versatile"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
