package main

import (
	"flag"
	"fmt"
	"os"

	lib "github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/mealplan-sheets/commands"
	"github.com/uhppoted/mealplan-sheets/log"
)

var cli = []lib.Command{
	&commands.AuthoriseCmd,
	&commands.PlanCmd,
	&commands.PreferencesCmd,
	&commands.GetCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

var help = lib.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file (YAML)")
	flag.Parse()

	log.SetDebug(options.Debug)

	cmd, err := lib.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		os.Exit(1)
	}

	log.Sync()
}
