package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/mealplan-sheets/config"
	"github.com/uhppoted/mealplan-sheets/log"
	"github.com/uhppoted/mealplan-sheets/sheet"
)

const APP = "mealplan-sheets"

type Options struct {
	Config string
	Debug  bool
}

// command holds the options shared by the commands that access the spreadsheet. Empty
// values defer to the configuration file and environment.
type command struct {
	workdir     string
	credentials string
	url         string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")

	return flagset
}

// configure loads the configuration and applies any command line overrides.
func (c *command) configure(options *Options) (*config.Config, error) {
	c.debug = options.Debug

	cfg, err := config.Load(options.Config, DEFAULT_WORKDIR, DEFAULT_CREDENTIALS)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(c.workdir); v != "" {
		cfg.Workdir = v
	}

	if v := strings.TrimSpace(c.credentials); v != "" {
		cfg.Sheets.Credentials = v
	}

	if v := strings.TrimSpace(c.url); v != "" {
		cfg.Sheets.URL = v
	}

	if strings.TrimSpace(cfg.Sheets.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cfg.Sheets.URL) == "" {
		return nil, fmt.Errorf("--url is a required option")
	}

	return cfg, nil
}

// open authorises access to Google Sheets and fetches the configured spreadsheet.
func (c *command) open(ctx context.Context, cfg *config.Config, scope string) (*sheet.Spreadsheet, error) {
	id, err := sheet.ExtractID(cfg.Sheets.URL)
	if err != nil {
		return nil, err
	}

	if c.debug {
		log.Debugf("Spreadsheet - ID:%s  preferences:%s  plan:%s", id, cfg.Sheets.Preferences, cfg.Sheets.Plan)
	}

	client, err := authorize(cfg.Sheets.Credentials, scope, cfg.Workdir)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return sheet.Open(ctx, google, id)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug        Displays internal information for diagnosing errors")
	fmt.Println("    --config       Configuration file (YAML)")
}
