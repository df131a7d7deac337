package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	credentials: "",
	tokens:      "",
	debug:       false,
}

type Authorise struct {
	credentials string
	tokens      string
	debug       bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises access to the Google Sheets worksheet and Google Drive folder"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises access to the Google Sheets worksheet and Google Drive folder and caches the OAuth2 token")
	fmt.Println("  for use by the 'run', 'get' and 'put' commands. Not required for service account credentials.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s authorise --credentials \"credentials.json\"\n", APP)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the cached OAuth2 tokens")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	ctx, options := unpack(args...)

	c := command{
		credentials: cmd.credentials,
		tokens:      cmd.tokens,
	}

	cfg, err := c.configure(options)
	if err != nil {
		return err
	}

	cmd.debug = options.Debug

	if strings.TrimSpace(cfg.Google.Credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	b, err := os.ReadFile(cfg.Google.Credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, SHEETS, DRIVE)
	if err != nil {
		return fmt.Errorf("Authorisation error (%w)", err)
	}

	token, err := getTokenFromWeb(ctx, config)
	if err != nil {
		return err
	}

	tokens := tokensFile(cfg.Google.Credentials, cfg.Google.Tokens)
	if cmd.debug {
		debugf("OAuth2 token expires %v", token.Expiry)
	}

	return saveToken(tokens, token)
}
