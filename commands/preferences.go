package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/uhppoted/mealplan-sheets/mealplan"
	"github.com/uhppoted/mealplan-sheets/preferences"
)

var PreferencesCmd = Preferences{
	command: command{},
}

type Preferences struct {
	command
	area string
}

func (cmd *Preferences) Name() string {
	return "preferences"
}

func (cmd *Preferences) Description() string {
	return "Displays the meal preferences from a Google Sheets worksheet"
}

func (cmd *Preferences) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Preferences) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] preferences [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Reads and validates the meal preferences worksheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s preferences --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --range "Preferences!A1:D2"`+"\n", APP)
	fmt.Println()
}

func (cmd *Preferences) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("preferences")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Preferences range e.g. 'Preferences!A1:D2'. Defaults to the configured range")

	return flagset
}

func (cmd *Preferences) Execute(args ...any) error {
	options := args[0].(*Options)

	cfg, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if v := strings.TrimSpace(cmd.area); v != "" {
		cfg.Sheets.Preferences = v
	}

	ctx := context.Background()

	spreadsheet, err := cmd.open(ctx, cfg, SHEETS_READONLY)
	if err != nil {
		return err
	}

	p, err := preferences.Read(ctx, spreadsheet, cfg.Sheets.Preferences)
	if err != nil {
		return err
	}

	diet := p.Diet
	if diet == "" {
		diet = "any"
	}

	fmt.Println()
	fmt.Printf("  Calorie goal:         %v\n", p.CalorieGoal)
	fmt.Printf("  Diet:                 %v\n", diet)
	fmt.Printf("  Excluded ingredients: %v\n", strings.Join(p.Exclude, ", "))
	fmt.Printf("  Number of days:       %v (%v)\n", p.Days, mealplan.TimeFrame(p.Days))
	fmt.Println()

	return nil
}
