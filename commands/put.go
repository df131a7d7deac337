package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/uhppoted/uhppoted-app-metadata/store"
)

var PutCmd = Put{
	command: command{},
	file:    "",
	dryrun:  false,
}

type Put struct {
	command
	file   string
	dryrun bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Appends the metadata records in a TSV file to the Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] put [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Appends the records in a TSV file (with a header row) to the metadata records worksheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --debug put --credentials \"credentials.json\" \\\n", APP)
	fmt.Println(`        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`        --range "Metadatos!A1:P" \`)
	fmt.Println(`        --file "metadata.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Validates the TSV file without updating the worksheet")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	ctx, options := unpack(args...)

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	cfg, err := cmd.configure(options)
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	records, err := store.TSVToRecords(f)
	if err != nil {
		return fmt.Errorf("Invalid TSV file (%w)", err)
	}

	if cmd.dryrun {
		infof("TSV file %v - %v valid records", cmd.file, len(records))
		return nil
	}

	google, err := connect(ctx, cfg)
	if err != nil {
		return err
	}

	worksheet, err := google.worksheet(ctx, cfg, cmd.debug)
	if err != nil {
		return err
	}

	if err := worksheet.Append(ctx, records...); err != nil {
		return err
	}

	infof("Appended %v records from TSV file %v to Google Sheets %v", len(records), cmd.file, cfg.Google.Range)

	return nil
}
