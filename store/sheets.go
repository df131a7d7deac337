package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-metadata/metadata"
)

// Sheets appends metadata records to a Google Sheets worksheet range.
type Sheets struct {
	google      *sheets.Service
	spreadsheet string
	area        string
}

const SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

func NewSheets(google *sheets.Service, spreadsheet, area string) (*Sheets, error) {
	if strings.TrimSpace(spreadsheet) == "" {
		return nil, fmt.Errorf("Missing spreadsheet ID")
	}

	if match := regexp.MustCompile(`(.+?)!.*`).FindStringSubmatch(strings.TrimSpace(area)); len(match) < 2 {
		return nil, fmt.Errorf("Invalid range '%s' - expected something like 'Metadatos!A1:P'", area)
	}

	return &Sheets{
		google:      google,
		spreadsheet: spreadsheet,
		area:        strings.TrimSpace(area),
	}, nil
}

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func SpreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("Invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// FindSpreadsheet returns the ID of the (first) spreadsheet visible to the Drive client with
// the given name.
func FindSpreadsheet(ctx context.Context, gdrive *drive.Service, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`),
		SpreadsheetMimeType)

	list, err := gdrive.Files.List().Q(q).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("Error searching for spreadsheet '%s' (%w)", name, err)
	}

	if len(list.Files) == 0 {
		return "", fmt.Errorf("No spreadsheet named '%s'", name)
	}

	return list.Files[0].Id, nil
}

// Append adds the records as rows after the last row of the configured range. Values are
// stored as entered so that a summary starting with '=' is not evaluated as a formula.
func (s *Sheets) Append(ctx context.Context, records ...*metadata.Record) error {
	if len(records) == 0 {
		return nil
	}

	values := sheets.ValueRange{
		Values: [][]any{},
	}

	for _, record := range records {
		values.Values = append(values.Values, record.Row())
	}

	if _, err := s.google.Spreadsheets.Values.Append(s.spreadsheet, s.area, &values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("Error appending to worksheet %v (%w)", s.area, err)
	}

	return nil
}

// Get retrieves the configured range from the worksheet.
func (s *Sheets) Get(ctx context.Context) (*sheets.ValueRange, error) {
	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet, s.area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("Unable to retrieve data from sheet (%w)", err)
	}

	return response, nil
}

func (s *Sheets) String() string {
	return fmt.Sprintf("%v %v", s.spreadsheet, s.area)
}
