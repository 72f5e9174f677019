package main

import (
	"os"

	"github.com/soocke/camparams-go/app"
	"github.com/soocke/camparams-go/commands"
)

func main() {
	cli := commands.New(os.Stdout, NewLogger, app.Run)
	if err := cli.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
