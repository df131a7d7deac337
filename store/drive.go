package store

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
)

// Drive uploads files to a Google Drive folder. An empty folder uploads to the root of the
// account 'My Drive'.
type Drive struct {
	google *drive.Service
	folder string
}

func NewDrive(google *drive.Service, folder string) *Drive {
	return &Drive{
		google: google,
		folder: folder,
	}
}

// Upload creates a new plain text file with the content and returns the Drive file ID.
func (d *Drive) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	file := drive.File{
		Name:     name,
		MimeType: "text/plain",
	}

	if d.folder != "" {
		file.Parents = []string{d.folder}
	}

	created, err := d.google.Files.Create(&file).Media(content).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("Error uploading %v to Google Drive (%w)", name, err)
	}

	return created.Id, nil
}
