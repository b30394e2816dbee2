package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var Cfg *AppConfig

// AppConfig holds all environment variables.
type AppConfig struct {
	Port            string
	FrontendURL     string
	SleeperBaseURL  string
	LogLevel        string
	DrawingFile     string
	SessionCapacity int
}

// Load reads environment variables (and .env if present).
func Load() *AppConfig {
	_ = godotenv.Load()

	Cfg = &AppConfig{
		Port:            os.Getenv("PORT"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		SleeperBaseURL:  os.Getenv("SLEEPER_BASE_URL"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		DrawingFile:     os.Getenv("DRAWING_FILE"),
		SessionCapacity: intEnv("SESSION_CAPACITY", 32),
	}
	if Cfg.Port == "" {
		Cfg.Port = "8080"
	}
	if Cfg.LogLevel == "" {
		Cfg.LogLevel = "info"
	}
	return Cfg
}

// CORSMiddleware admits the configured frontend origin, or any origin when
// none is configured.
func CORSMiddleware() gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if Cfg != nil && Cfg.FrontendURL != "" {
		conf.AllowOrigins = []string{Cfg.FrontendURL}
	} else {
		conf.AllowAllOrigins = true
	}
	return cors.New(conf)
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
