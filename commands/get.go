package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-metadata/store"
)

var GetCmd = Get{
	command: command{},
	file:    time.Now().Format("metadata-2006-01-02T150405.tsv"),
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the metadata records from the Google Sheets worksheet and stores them to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the metadata records worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --debug get --credentials \"credentials.json\" \\\n", APP)
	fmt.Println(`        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`        --range "Metadatos!A1:P" \`)
	fmt.Println(`        --file "metadata.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to 'metadata-<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	ctx, options := unpack(args...)

	cfg, err := cmd.configure(options)
	if err != nil {
		return err
	}

	google, err := connect(ctx, cfg)
	if err != nil {
		return err
	}

	worksheet, err := google.worksheet(ctx, cfg, cmd.debug)
	if err != nil {
		return err
	}

	response, err := worksheet.Get(ctx)
	if err != nil {
		return err
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	if err := saveTSV(cmd.file, response); err != nil {
		return err
	}

	infof("Retrieved metadata records to file %s", cmd.file)

	return nil
}

// saveTSV writes the worksheet to a temporary file in the target directory and renames it
// to the target file once it is complete.
func saveTSV(file string, response *sheets.ValueRange) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".metadata-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := store.SheetToTSV(tmp, response); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	return os.Rename(tmp.Name(), file)
}
