package main

import (
	"context"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/dashauth/internal/buildinfo"
	"github.com/dmitrijs2005/dashauth/internal/server"
	"github.com/dmitrijs2005/dashauth/internal/server/config"
)

func main() {

	figure.NewFigure("dashauth", "cybermedium", true).Print()
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		os.Exit(1)
	}

}
