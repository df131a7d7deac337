package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/uhppoted/uhppoted-app-metadata/config"
	"github.com/uhppoted/uhppoted-app-metadata/keywords"
)

const APP = "uhppoted-app-metadata"

// Options holds the global command line options.
type Options struct {
	Config string
	Debug  bool
}

const VERSION = "v0.1.0"

// unpack extracts the context and global options passed to a command's Execute by main.
func unpack(args ...any) (context.Context, *Options) {
	ctx := context.Background()
	options := &Options{}

	for _, arg := range args {
		switch v := arg.(type) {
		case context.Context:
			ctx = v

		case *Options:
			if v != nil {
				options = v
			}
		}
	}

	return ctx, options
}

// command holds the Google API options shared by the subcommands that access the
// metadata worksheet.
type command struct {
	credentials string
	tokens      string
	url         string
	area        string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for the cached OAuth2 tokens")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")
	flagset.StringVar(&c.area, "range", c.area, "Spreadsheet range e.g. 'Metadatos!A1:P'")

	return flagset
}

// configure loads the configuration file and applies any command line overrides.
func (c *command) configure(options *Options) (*config.Config, error) {
	c.debug = options.Debug

	cfg, err := config.Load(options.Config)
	if err != nil {
		return nil, fmt.Errorf("Could not load configuration (%w)", err)
	}

	if strings.TrimSpace(c.credentials) != "" {
		cfg.Google.Credentials = c.credentials
	}

	if strings.TrimSpace(c.tokens) != "" {
		cfg.Google.Tokens = c.tokens
	}

	if strings.TrimSpace(c.url) != "" {
		cfg.Google.Spreadsheet = c.url
	}

	if strings.TrimSpace(c.area) != "" {
		cfg.Google.Range = c.area
	}

	if strings.TrimSpace(cfg.Google.Tokens) == "" {
		cfg.Google.Tokens = filepath.Join(DEFAULT_WORKDIR, ".google")
	}

	return cfg, nil
}

func extractor(cfg *config.Config) *keywords.Extractor {
	if len(cfg.Keywords.StopWords) == 0 {
		return keywords.Default
	}

	return keywords.New(language.Spanish, keywords.Spanish, cfg.Keywords.StopWords)
}

func logfile(cfg config.LogConfig) {
	if strings.TrimSpace(cfg.File) != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		})
	}
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
