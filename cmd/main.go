package main

import (
	"flag"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"lotto/internal/config"
	"lotto/internal/engine"
	"lotto/internal/handlers"
	"lotto/internal/services"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config file")
	flag.Parse()

	// 1. Load configuration
	conf, err := config.Load(*configPath)
	if err != nil {
		logger.Init("lottery", true, false, os.Stderr)
		logger.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize logging
	defer logger.Init("lottery", conf.Log.Verbose, false, os.Stdout).Close()

	// 3. Initialize the Lottery Service
	var source engine.RandomSource = engine.MathSource{}
	if conf.Game.RandomSource == config.RandomCrypto {
		source = engine.CryptoSource{}
	}
	lotteryService, err := services.NewLotteryService(conf.Game.GameConfig, engine.WithRandomSource(source))
	if err != nil {
		logger.Fatalf("Failed to create lottery service: %v", err)
	}

	// 4. Initialize the HTTP Handler and router
	gin.SetMode(conf.Server.GinMode)
	r := handlers.NewRouter(handlers.NewHTTPHandler(lotteryService))

	// 5. Start the background janitor to clean up inactive sessions
	go func() {
		ticker := time.NewTicker(conf.Server.CleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			removed := lotteryService.CleanUpInactiveSessions(conf.Server.SessionTTL)
			logger.Infof("Performed cleanup of inactive sessions, removed %d.", removed)
		}
	}()

	// 6. Run the server
	logger.Infof("Server starting on http://localhost:%s (%d of %d, random source %s)",
		conf.Server.Port, conf.Game.SelectCount, conf.Game.TotalNumbers, conf.Game.RandomSource)
	if err := r.Run(":" + conf.Server.Port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
