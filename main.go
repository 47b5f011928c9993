package main

import (
	"go.uber.org/zap"

	"surveyhub/internal/config"
	"surveyhub/internal/database"
	logger "surveyhub/internal/logging"
	"surveyhub/internal/repository"
)

func main() {
	// A plain console logger carries us until the real one is configured.
	bootLog, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}

	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	log, err := logger.Init(config.Conf.Logging)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	if err := database.Init(log); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	surveys, err := repository.ListSurveys(false)
	if err != nil {
		log.Fatal("Failed to query surveys", zap.Error(err))
	}
	users, err := repository.ListUsers()
	if err != nil {
		log.Fatal("Failed to query users", zap.Error(err))
	}

	log.Info("Survey store ready",
		zap.String("driver", config.Conf.Database.Driver),
		zap.Int("surveys", len(surveys)),
		zap.Int("users", len(users)),
	)
}
