package main

import (
	"log"

	"github.com/we-dream-team/Halimou/internal/config"
	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := server.New(cfg.CORSOrigins)

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
