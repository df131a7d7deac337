package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-metadata/config"
	"github.com/uhppoted/uhppoted-app-metadata/store"
)

type services struct {
	sheets *sheets.Service
	drive  *drive.Service
}

func connect(ctx context.Context, cfg *config.Config) (*services, error) {
	if strings.TrimSpace(cfg.Google.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	client, err := authorize(ctx, cfg.Google.Credentials, cfg.Google.Tokens, SHEETS, DRIVE)
	if err != nil {
		return nil, fmt.Errorf("Authentication/authorization error (%w)", err)
	}

	gsheets, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("Unable to create new Sheets client (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("Unable to create new Drive client (%w)", err)
	}

	return &services{
		sheets: gsheets,
		drive:  gdrive,
	}, nil
}

// worksheet returns the records worksheet identified by the configured spreadsheet URL or,
// if there is no URL, by the spreadsheet name.
func (s *services) worksheet(ctx context.Context, cfg *config.Config, debug bool) (*store.Sheets, error) {
	var spreadsheet string
	var err error

	if strings.TrimSpace(cfg.Google.Spreadsheet) != "" {
		spreadsheet, err = store.SpreadsheetID(cfg.Google.Spreadsheet)
	} else if strings.TrimSpace(cfg.Google.SpreadsheetName) != "" {
		spreadsheet, err = store.FindSpreadsheet(ctx, s.drive, cfg.Google.SpreadsheetName)
	} else {
		err = fmt.Errorf("--url is a required option")
	}

	if err != nil {
		return nil, err
	}

	if debug {
		debugf("Spreadsheet - ID:%s  range:%s", spreadsheet, cfg.Google.Range)
	}

	return store.NewSheets(s.sheets, spreadsheet, cfg.Google.Range)
}
