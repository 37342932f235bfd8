package main

import (
	"github.com/andrewthebest/trivia-api/internal/config"
	"github.com/andrewthebest/trivia-api/internal/database"
	"github.com/andrewthebest/trivia-api/internal/server"

	_ "github.com/andrewthebest/trivia-api/docs"

	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia question bank with paginated listings, substring search and quiz play
// @host            localhost:8080
// @BasePath        /

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db := database.Connect(cfg, logger)
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	r := server.New(db, logger)

	logger.Info("server listening", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
