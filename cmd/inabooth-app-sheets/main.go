package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/inabooth/inabooth-app-sheets/commands"
)

var cli = []uhppoted.Command{
	&commands.SyncCmd,
	&commands.GetCmd,
	&commands.HistoryCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

var help = uhppoted.NewHelp(commands.APP, cli, &commands.SyncCmd)

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	// ... no command runs the default sync
	cmd, err := uhppoted.Parse(cli, &commands.SyncCmd, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	ctx := context.Background()

	if err := cmd.Execute(ctx, &options); err != nil {
		log.Fatalf("%-5s %v", "ERROR", err)
	}
}
