package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/config"
	"organic-marketplace/internal/database"
	"organic-marketplace/internal/router"
	"organic-marketplace/internal/storage"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	if cfg.Env != "development" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatalf("connect to mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Errorf("disconnect mongodb: %v", err)
		}
	}()

	db := client.Database(cfg.DBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	store := storage.NewMongo(db, log)
	r := router.New(cfg, log, store, client)

	log.WithFields(logrus.Fields{"port": cfg.Port, "env": cfg.Env}).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
