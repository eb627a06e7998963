package main

import (
	"log"

	"github.com/dataanalyse/financial-goals-planner/internal/bot"
	"github.com/dataanalyse/financial-goals-planner/internal/config"
	"github.com/dataanalyse/financial-goals-planner/internal/repository"
	"github.com/dataanalyse/financial-goals-planner/internal/service"
	"github.com/dataanalyse/financial-goals-planner/internal/storage/cache"
	"github.com/dataanalyse/financial-goals-planner/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	services := service.InitServices(repos.ProgressR, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache, cfg.Course)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
