package main

import (
	_ "time/tzdata" // fuso America/Sao_Paulo disponível mesmo sem tzdata no host

	"estacionamento-backend/internal/app"
	"estacionamento-backend/internal/config"
	"estacionamento-backend/internal/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{})

	cfg := config.Load()
	database.Init(cfg)

	a := app.New(cfg)

	log.Info("Servidor rodando na porta ", cfg.HTTPPort)
	if err := a.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
