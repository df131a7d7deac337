package store

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-metadata/metadata"
)

var record = metadata.Record{
	ID:       "20240305140709",
	Title:    "Red vial",
	Summary:  "=Red vial nacional",
	Keywords: "red, vial",
	Language: "es",
}

type upload struct {
	metadata drive.File
	content  string
}

func newSheets(t *testing.T, handler http.HandlerFunc) *sheets.Service {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	google, err := sheets.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)

	return google
}

func newDrive(t *testing.T, handler http.HandlerFunc) *drive.Service {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	google, err := drive.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	require.NoError(t, err)

	return google
}

func uploads(t *testing.T, received chan<- upload) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediatype, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || !strings.HasPrefix(mediatype, "multipart/") {
			http.Error(w, "expected multipart upload", http.StatusBadRequest)
			return
		}

		var u upload
		parts := multipart.NewReader(r.Body, params["boundary"])

		if p, err := parts.NextPart(); err == nil {
			json.NewDecoder(p).Decode(&u.metadata)
		}

		if p, err := parts.NextPart(); err == nil {
			b, _ := io.ReadAll(p)
			u.content = string(b)
		}

		received <- u

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"drive-file-1"}`))
	}
}

func TestSpreadsheetID(t *testing.T) {
	id, err := SpreadsheetID("https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0")

	require.NoError(t, err)
	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", id)

	_, err = SpreadsheetID("https://example.com/spreadsheets/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")
	assert.Error(t, err)
}

func TestNewSheetsWithInvalidRange(t *testing.T) {
	_, err := NewSheets(nil, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "A1:P")
	assert.Error(t, err)

	_, err = NewSheets(nil, "", "Metadatos!A1:P")
	assert.Error(t, err)
}

func TestSheetsAppend(t *testing.T) {
	var path string
	var query map[string][]string
	var values sheets.ValueRange

	google := newSheets(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		json.NewDecoder(r.Body).Decode(&values)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"updates":{"updatedRows":1}}`))
	})

	s, err := NewSheets(google, "spreadsheet-1", "Metadatos!A1:P")
	require.NoError(t, err)

	require.NoError(t, s.Append(context.Background(), &record))

	assert.Equal(t, "/v4/spreadsheets/spreadsheet-1/values/Metadatos!A1:P:append", path)
	assert.Equal(t, []string{"RAW"}, query["valueInputOption"])
	assert.Equal(t, []string{"INSERT_ROWS"}, query["insertDataOption"])
	require.Len(t, values.Values, 1)
	require.Len(t, values.Values[0], len(metadata.Header()))
	assert.Equal(t, "20240305140709", values.Values[0][0])
	assert.Equal(t, "=Red vial nacional", values.Values[0][2])
	assert.Equal(t, "es", values.Values[0][13])
}

func TestSheetsAppendError(t *testing.T) {
	google := newSheets(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	})

	s, err := NewSheets(google, "spreadsheet-1", "Metadatos!A1:P")
	require.NoError(t, err)

	assert.Error(t, s.Append(context.Background(), &record))
}

func TestFindSpreadsheet(t *testing.T) {
	var q string

	google := newDrive(t, func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query().Get("q")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[{"id":"spreadsheet-1","name":"Planilla_formulario_metadatos"}]}`))
	})

	id, err := FindSpreadsheet(context.Background(), google, "Planilla_formulario_metadatos")

	require.NoError(t, err)
	assert.Equal(t, "spreadsheet-1", id)
	assert.Contains(t, q, "name = 'Planilla_formulario_metadatos'")
	assert.Contains(t, q, SpreadsheetMimeType)
}

func TestFindSpreadsheetNotFound(t *testing.T) {
	google := newDrive(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[]}`))
	})

	_, err := FindSpreadsheet(context.Background(), google, "Planilla_formulario_metadatos")

	assert.Error(t, err)
}

func TestDriveUpload(t *testing.T) {
	received := make(chan upload, 1)
	google := newDrive(t, uploads(t, received))

	id, err := NewDrive(google, "folder-1").Upload(context.Background(), "20240305140709_Red vial.txt", strings.NewReader("ID Único: 20240305140709\n"))

	require.NoError(t, err)
	assert.Equal(t, "drive-file-1", id)

	u := <-received
	assert.Equal(t, "20240305140709_Red vial.txt", u.metadata.Name)
	assert.Equal(t, []string{"folder-1"}, u.metadata.Parents)
	assert.Equal(t, "ID Único: 20240305140709\n", u.content)
}

func TestTextFilesWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Archivos_TXT")

	file, err := NewTextFiles(dir).Write(&record)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20240305140709_Red vial.txt"), file)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "ID Único: 20240305140709\nTítulo: Red vial\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestArchiveSave(t *testing.T) {
	appended := 0
	received := make(chan upload, 1)

	s, err := NewSheets(newSheets(t, func(w http.ResponseWriter, r *http.Request) {
		appended++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}), "spreadsheet-1", "Metadatos!A1:P")
	require.NoError(t, err)

	dir := t.TempDir()
	archive := Archive{
		Sheets: s,
		Files:  NewTextFiles(dir),
		Drive:  NewDrive(newDrive(t, uploads(t, received)), ""),
	}

	require.NoError(t, archive.Save(context.Background(), &record))

	assert.Equal(t, 1, appended)
	assert.FileExists(t, filepath.Join(dir, record.Filename()))

	u := <-received
	assert.Equal(t, record.Filename(), u.metadata.Name)
	assert.Empty(t, u.metadata.Parents)
}

func TestArchiveSaveStopsOnError(t *testing.T) {
	s, err := NewSheets(newSheets(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	}), "spreadsheet-1", "Metadatos!A1:P")
	require.NoError(t, err)

	dir := t.TempDir()
	archive := Archive{
		Sheets: s,
		Files:  NewTextFiles(dir),
	}

	assert.Error(t, archive.Save(context.Background(), &record))
	assert.NoFileExists(t, filepath.Join(dir, record.Filename()))
}
