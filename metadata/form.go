package metadata

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// OTHER is the select option value that defers to the companion free-text field.
const OTHER = "OTRO"

// MissingFieldsError lists the form fields absent from a submission.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing form fields: %s", strings.Join(e.Fields, ", "))
}

type form struct {
	values  url.Values
	missing []string
}

// FromForm builds a record from a metadata form submission, assigning it an ID for the
// submission time.
func FromForm(values url.Values, now time.Time) (*Record, error) {
	f := form{values: values}

	record := Record{
		ID:              NewID(now),
		Title:           f.get("titulo"),
		Summary:         f.get("resumen"),
		Keywords:        f.get("palabrasClave"),
		Purpose:         f.get("proposito"),
		Created:         f.get("fechaCreacion"),
		Updated:         f.get("fechaActualizacion"),
		Organisation:    f.choice("organizacionResponsable", "otroOrganizacion"),
		Modified:        f.get("modificado"),
		Contact:         f.get("contacto"),
		ReferenceSystem: f.choice("sistemaReferencia", "otroSistemaReferencia"),
		Format:          f.choice("formatoDistribucion", "otroFormato"),
		Restrictions:    f.get("restricciones"),
		Language:        f.choice("idioma", "otroIdioma"),
		Conformity:      f.choice("conformidad", "otroConformidad"),
		Path:            f.get("ruta"),
	}

	if len(f.missing) > 0 {
		return nil, &MissingFieldsError{Fields: f.missing}
	}

	return &record, nil
}

func (f *form) get(key string) string {
	if v, ok := f.values[key]; !ok || len(v) == 0 {
		f.missing = append(f.missing, key)
		return ""
	} else {
		return strings.TrimSpace(v[0])
	}
}

// choice returns the selected option, or the 'other' field if the selection is OTRO.
func (f *form) choice(key, other string) string {
	if v := f.get(key); v == OTHER {
		return f.get(other)
	} else {
		return v
	}
}
