package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uhppoted/uhppoted-app-metadata/metadata"
)

// TextFiles stores each metadata record as a text file in a directory.
type TextFiles struct {
	dir string
}

func NewTextFiles(dir string) *TextFiles {
	return &TextFiles{
		dir: dir,
	}
}

// Write creates (or replaces) the record text file and returns the file path.
func (t *TextFiles) Write(record *metadata.Record) (string, error) {
	var b bytes.Buffer
	if err := record.WriteText(&b); err != nil {
		return "", err
	}

	if err := os.MkdirAll(t.dir, 0770); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(t.dir, ".record-*")
	if err != nil {
		return "", err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(b.Bytes()); err != nil {
		return "", err
	}

	if err := tmp.Close(); err != nil {
		return "", err
	}

	file := filepath.Join(t.dir, record.Filename())
	if err := os.Rename(tmp.Name(), file); err != nil {
		return "", fmt.Errorf("Error saving record %v (%w)", record.ID, err)
	}

	return file, nil
}
