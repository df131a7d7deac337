package store

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/uhppoted/uhppoted-app-metadata/metadata"
)

// Archive persists a submitted record to the worksheet, the local text file directory and
// Google Drive, in that order. A nil stage is skipped and the first failure aborts the save.
type Archive struct {
	Sheets *Sheets
	Files  *TextFiles
	Drive  *Drive
	Debug  bool
}

func (a *Archive) Save(ctx context.Context, record *metadata.Record) error {
	if a.Sheets != nil {
		if err := a.Sheets.Append(ctx, record); err != nil {
			return err
		}

		a.debugf("%v  appended to worksheet %v", record.ID, a.Sheets)
	}

	if a.Files != nil {
		if file, err := a.Files.Write(record); err != nil {
			return fmt.Errorf("Error writing record text file (%w)", err)
		} else {
			a.debugf("%v  saved to %v", record.ID, file)
		}
	}

	if a.Drive != nil {
		var b bytes.Buffer
		if err := record.WriteText(&b); err != nil {
			return err
		}

		if id, err := a.Drive.Upload(ctx, record.Filename(), &b); err != nil {
			return err
		} else {
			a.debugf("%v  uploaded to Google Drive (%v)", record.ID, id)
		}
	}

	log.Printf("%-5s %v  saved record '%v'", "INFO", record.ID, record.Title)

	return nil
}

func (a *Archive) debugf(format string, args ...any) {
	if a.Debug {
		log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}
