package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/uhppoted/mealplan-sheets/log"
	"github.com/uhppoted/mealplan-sheets/mealplan"
	"github.com/uhppoted/mealplan-sheets/preferences"
	"github.com/uhppoted/mealplan-sheets/render"
)

var PlanCmd = Plan{
	command: command{},
	dryrun:  false,
}

type Plan struct {
	command
	preferences string
	area        string
	api         string
	dryrun      bool
}

func (cmd *Plan) Name() string {
	return "plan"
}

func (cmd *Plan) Description() string {
	return "Generates a meal plan from the preferences in a Google Sheets worksheet and writes it to the meal plan worksheet"
}

func (cmd *Plan) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Plan) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] plan [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Reads the meal preferences from the preferences worksheet, requests a meal plan from")
	fmt.Println("  the meal planning API and replaces the contents of the meal plan worksheet with it.")
	fmt.Println("  The meal plan worksheet is left unchanged if the API request fails.")
	fmt.Println()
	fmt.Println("  The API key is taken from the configuration file or the MEALPLAN_API_KEY environment")
	fmt.Println("  variable.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s --debug plan --credentials "credentials.json" \`+"\n", APP)
	fmt.Println(`                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                          --preferences "Preferences!A1:D2" \`)
	fmt.Println(`                          --range "Meal Plan!A1:G"`)
	fmt.Println()
	fmt.Printf(`    %s plan --dry-run`+"\n", APP)
	fmt.Println()
}

func (cmd *Plan) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("plan")

	flagset.StringVar(&cmd.preferences, "preferences", cmd.preferences, "Preferences range e.g. 'Preferences!A1:D2'. Defaults to the configured range")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Meal plan range e.g. 'Meal Plan!A1:G'. Defaults to the configured range")
	flagset.StringVar(&cmd.api, "api", cmd.api, "Meal plan API URL. Defaults to the configured URL")
	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Writes the meal plan to the console as TSV without updating the worksheet")

	return flagset
}

func (cmd *Plan) Execute(args ...any) error {
	options := args[0].(*Options)

	cfg, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if v := strings.TrimSpace(cmd.preferences); v != "" {
		cfg.Sheets.Preferences = v
	}

	if v := strings.TrimSpace(cmd.area); v != "" {
		cfg.Sheets.Plan = v
	}

	if v := strings.TrimSpace(cmd.api); v != "" {
		cfg.API.URL = v
	}

	if strings.TrimSpace(cfg.API.Key) == "" {
		log.Warnf("No meal plan API key configured")
	}

	ctx := context.Background()

	spreadsheet, err := cmd.open(ctx, cfg, SHEETS)
	if err != nil {
		return err
	}

	// ... preferences
	p, err := preferences.Read(ctx, spreadsheet, cfg.Sheets.Preferences)
	if err != nil {
		return err
	}

	log.Infof("Preferences - calories:%v  diet:%q  exclude:%v  days:%v", p.CalorieGoal, p.Diet, p.Exclude, p.Days)

	// ... meal plan
	client := mealplan.NewClient(mealplan.Config{
		URL:     cfg.API.URL,
		APIKey:  cfg.API.Key,
		Timeout: cfg.API.Timeout,
	})

	plan, err := client.Generate(ctx, p)
	if err != nil {
		log.Warnf("%v", err)
		plan = nil
	}

	// ... render
	if cmd.dryrun {
		sheet, err := render.Layout(p, plan)
		if err != nil {
			return fmt.Errorf("meal plan not generated (%w)", err)
		}

		return sheetToTSV(os.Stdout, sheet.Rows)
	}

	region, err := spreadsheet.Region(cfg.Sheets.Plan)
	if err != nil {
		return err
	}

	sheet, err := render.Render(ctx, region, p, plan)
	if errors.Is(err, render.ErrInvalidPlan) {
		return fmt.Errorf("meal plan worksheet not updated (%w)", err)
	} else if err != nil {
		return err
	}

	log.Infof("Meal plan updated - %v days, %v meals", sheet.Days, sheet.Meals)

	return nil
}
