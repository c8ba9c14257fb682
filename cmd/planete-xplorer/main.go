package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/internal/app"
	"github.com/Biholo/planete-xplorer/internal/config"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithField("error", err.Error()).Fatal("configuration error")
	}

	if err := app.Run(cfg, log); err != nil {
		log.WithField("error", err.Error()).Fatal("server exited")
	}
}
