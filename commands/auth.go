package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/uhppoted/mealplan-sheets/log"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"
const SHEETS_READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"

func authorize(credentials, scope, workdir string) (*http.Client, error) {
	config, err := oauthConfig(credentials, scope)
	if err != nil {
		return nil, err
	}

	file := tokens(credentials, workdir)
	token, err := tokenFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("no authorisation token in %v - run '%v authorise' first (%w)", file, APP, err)
	}

	return config.Client(context.Background(), token), nil
}

func oauthConfig(credentials, scope string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, scope)
}

// tokens returns the path of the OAuth2 token file for a credentials file
// e.g. <workdir>/.google/credentials.sheets
func tokens(credentials, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(workdir, ".google", fmt.Sprintf("%s.sheets", name))
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)

	return tok, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	log.Infof("Saving authorisation token to %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
