package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/uhppoted/uhppoted-app-metadata/httpd"
	"github.com/uhppoted/uhppoted-app-metadata/store"
)

var RunCmd = Run{
	command: command{},
	bind:    "",
	records: "",
	folder:  "",
	offline: false,
}

type Run struct {
	command
	bind    string
	records string
	folder  string
	offline bool
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Runs the metadata form and keyword extraction HTTP service"
}

func (cmd *Run) Usage() string {
	return "[--bind <address>] [--credentials <file>] [--url <url>] [--range <range>]"
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] run [options]\n", APP)
	fmt.Println()
	fmt.Println("  Serves the metadata form. Submitted records are appended to the Google Sheets worksheet, saved")
	fmt.Println("  as text files and uploaded to the Google Drive folder.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s run --bind 0.0.0.0:8080 --credentials \"credentials.json\" \\\n", APP)
	fmt.Println(`        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`        --range "Metadatos!A1:P" \`)
	fmt.Println(`        --folder "11UuTT-FWQfYWOUZkJfOOJt6-1qhE4r9A"`)
	fmt.Println()
	fmt.Printf("    %s run --offline --records ./Archivos_TXT\n", APP)
	fmt.Println()
}

func (cmd *Run) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("run")

	flagset.StringVar(&cmd.bind, "bind", cmd.bind, "HTTP listen address e.g. '0.0.0.0:8080'")
	flagset.StringVar(&cmd.records, "records", cmd.records, "Directory for the record text files")
	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Google Drive folder ID for the record text files")
	flagset.BoolVar(&cmd.offline, "offline", cmd.offline, "Saves records to text files only, without Google Sheets or Google Drive")

	return flagset
}

func (cmd *Run) Execute(args ...any) error {
	ctx, options := unpack(args...)

	cfg, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.bind) != "" {
		cfg.HTTP.Address = cmd.bind
	}

	if strings.TrimSpace(cmd.records) != "" {
		cfg.Records.Dir = cmd.records
	}

	if strings.TrimSpace(cmd.folder) != "" {
		cfg.Google.Folder = cmd.folder
	}

	logfile(cfg.Log)

	archive := store.Archive{
		Debug: cmd.debug,
	}

	if strings.TrimSpace(cfg.Records.Dir) != "" {
		archive.Files = store.NewTextFiles(cfg.Records.Dir)
	}

	if !cmd.offline {
		google, err := connect(ctx, cfg)
		if err != nil {
			return err
		}

		if archive.Sheets, err = google.worksheet(ctx, cfg, cmd.debug); err != nil {
			return err
		}

		archive.Drive = store.NewDrive(google.drive, cfg.Google.Folder)
	} else {
		warnf("offline mode - records will not be saved to Google Sheets or Google Drive")
	}

	server, err := httpd.New(&archive, extractor(cfg), httpd.Options{
		MaxKeywords: cfg.Keywords.Max,
		Rate:        cfg.HTTP.Rate,
		Burst:       cfg.HTTP.Burst,
		Debug:       cmd.debug,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx, cfg.HTTP.Address)
}
