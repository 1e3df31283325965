package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/secretvault/internal/buildinfo"
	"github.com/dmitrijs2005/secretvault/internal/cli"
	"github.com/dmitrijs2005/secretvault/internal/config"
	"github.com/dmitrijs2005/secretvault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
