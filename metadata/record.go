package metadata

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Record is a geospatial dataset description as captured by the metadata form.
type Record struct {
	ID              string
	Title           string
	Summary         string
	Keywords        string
	Purpose         string
	Created         string
	Updated         string
	Organisation    string
	Modified        string
	Contact         string
	ReferenceSystem string
	Format          string
	Restrictions    string
	Language        string
	Conformity      string
	Path            string
}

type field struct {
	header string
	label  string
	value  func(r *Record) *string
}

// Worksheet column order. The labels are used for the record text file.
var fields = []field{
	{"ID", "ID Único", func(r *Record) *string { return &r.ID }},
	{"Título", "Título", func(r *Record) *string { return &r.Title }},
	{"Resumen", "Resumen", func(r *Record) *string { return &r.Summary }},
	{"Palabras Clave", "Palabras Clave", func(r *Record) *string { return &r.Keywords }},
	{"Propósito", "Propósito", func(r *Record) *string { return &r.Purpose }},
	{"Fecha de Creación", "Fecha de Creación", func(r *Record) *string { return &r.Created }},
	{"Fecha de Actualización", "Fecha de Actualización", func(r *Record) *string { return &r.Updated }},
	{"Organización Responsable", "Organización Responsable", func(r *Record) *string { return &r.Organisation }},
	{"Modificado", "Modificado por Laboratorio", func(r *Record) *string { return &r.Modified }},
	{"Contacto", "Contacto", func(r *Record) *string { return &r.Contact }},
	{"Sistema de Referencia", "Sistema de Referencia Espacial", func(r *Record) *string { return &r.ReferenceSystem }},
	{"Formato de Distribución", "Formato de Distribución", func(r *Record) *string { return &r.Format }},
	{"Restricciones", "Restricciones de Uso", func(r *Record) *string { return &r.Restrictions }},
	{"Idioma", "Idioma", func(r *Record) *string { return &r.Language }},
	{"Conformidad", "Conformidad", func(r *Record) *string { return &r.Conformity }},
	{"Ruta", "Ruta", func(r *Record) *string { return &r.Path }},
}

// NewID returns the record ID for the submission time, formatted as YYYYMMDDhhmmss.
func NewID(t time.Time) string {
	return t.Format("20060102150405")
}

// Header returns the worksheet column titles.
func Header() []string {
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.header
	}

	return header
}

// Row returns the record as a worksheet row, in Header() order.
func (r *Record) Row() []any {
	row := make([]any, len(fields))
	for i, f := range fields {
		row[i] = *f.value(r)
	}

	return row
}

// FromRow is the inverse of Row. Missing trailing cells are left blank.
func FromRow(row []string) (*Record, error) {
	if len(row) > len(fields) {
		return nil, fmt.Errorf("Invalid record - expected at most %v columns, got %v", len(fields), len(row))
	}

	record := Record{}
	for i, v := range row {
		*fields[i].value(&record) = strings.TrimSpace(v)
	}

	if record.ID == "" {
		return nil, fmt.Errorf("Invalid record - missing ID")
	}

	return &record, nil
}

// WriteText writes the record as 'label: value' lines.
func (r *Record) WriteText(w io.Writer) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.label, *f.value(r)); err != nil {
			return err
		}
	}

	return nil
}

// Filename returns the name of the record text file i.e. <ID>_<title>.txt
func (r *Record) Filename() string {
	title := regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]+`).ReplaceAllString(strings.TrimSpace(r.Title), "_")

	return fmt.Sprintf("%s_%s.txt", r.ID, title)
}
