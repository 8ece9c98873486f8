package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/akarpov/gqltodo/internal/server"
	"github.com/akarpov/gqltodo/internal/server/config"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not loaded: %v", err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
