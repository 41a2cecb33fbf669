package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/webdiary/internal/cli"
	"github.com/dmitrijs2005/webdiary/internal/config"

	_ "time/tzdata"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
