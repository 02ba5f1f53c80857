package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"

	"golang.org/x/oauth2"

	"github.com/uhppoted/mealplan-sheets/log"
)

var AuthoriseCmd = Authorise{
	command: command{},
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return fmt.Sprintf("Authorises %v to access a Google Sheets spreadsheet", APP)
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] authorise [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Printf("  Authorises %v to access a Google Sheets spreadsheet. Opens the Google consent page\n", APP)
	fmt.Println("  in a browser and stores the authorisation token in the working directory.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s authorise --credentials "credentials.json" --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`+"\n", APP)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cfg, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := authenticate(cfg.Sheets.Credentials, SHEETS, cfg.Workdir); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	return nil
}

func authenticate(credentials, scope, workdir string) error {
	config, err := oauthConfig(credentials, scope)
	if err != nil {
		return err
	}

	state, err := newState()
	if err != nil {
		return err
	}

	// ... start HTTP server on localhost
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}

	config.RedirectURL = fmt.Sprintf("http://%v/", listener.Addr())

	authorised := make(chan string, 1)
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		code := rq.FormValue("code")

		if rq.FormValue("state") != state || code == "" {
			http.Error(w, "Invalid authorisation response", http.StatusBadRequest)
			return
		}

		fmt.Fprintf(w, "%v authorised - you can close this page\n", APP)

		select {
		case authorised <- code:
		default:
		}
	})

	srv := &http.Server{
		Handler: mux,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("%v", err)
		}
	}()

	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Warnf("%v", err)
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	// ... open OAuth2 URL in browser
	url := config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Println()
	fmt.Println("  Opening the Google authorisation page in your browser. If it does not open, please visit:")
	fmt.Println()
	fmt.Printf("    %v\n", url)
	fmt.Println()

	if err := exec.Command(OPEN, url).Start(); err != nil {
		log.Debugf("could not open browser (%v)", err)
	}

	// ... wait for authorisation
	select {
	case <-interrupt:
		fmt.Printf("\n.. cancelled\n\n")
		return nil

	case code := <-authorised:
		token, err := config.Exchange(context.Background(), code)
		if err != nil {
			return fmt.Errorf("unable to retrieve token from web (%w)", err)
		}

		return saveToken(tokens(credentials, workdir), token)
	}
}

// newState returns a random OAuth2 state token for the authorisation callback.
func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate authorisation state (%w)", err)
	}

	return hex.EncodeToString(b), nil
}
