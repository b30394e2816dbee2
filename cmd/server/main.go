package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/schne867/FFLottery/internal/config"
	"github.com/schne867/FFLottery/internal/drawing"
	"github.com/schne867/FFLottery/internal/handlers"
	"github.com/schne867/FFLottery/internal/reveal"
	"github.com/schne867/FFLottery/internal/sleeper"
)

func main() {
	// Load config & init
	appCfg := config.Load()

	logger, err := newLogger(appCfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	var preset *drawing.Config
	if appCfg.DrawingFile != "" {
		preset, err = drawing.Load(appCfg.DrawingFile)
		if err != nil {
			logger.Fatal("load drawing preset", zap.Error(err))
		}
		logger.Info("loaded drawing preset",
			zap.String("name", preset.Name),
			zap.Int("entries", len(preset.Entries)))
	}

	provider := sleeper.NewClient(appCfg.SleeperBaseURL, logger.Named("sleeper"))
	manager := reveal.NewManager(appCfg.SessionCapacity, logger.Named("reveal"))
	h := handlers.New(provider, manager, preset, logger.Named("api"))

	// Setup router
	r := gin.Default()
	r.Use(config.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h.Register(r.Group("/api/v1"))

	// Start the HTTP server (port from env or default)
	logger.Info("listening", zap.String("port", appCfg.Port))
	if err := r.Run(":" + appCfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// newLogger builds the service logger; unknown level names fall back to
// info rather than refusing to start.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
