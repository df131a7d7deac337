package metadata

import (
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"
)

var submitted = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

var submission = url.Values{
	"titulo":                  {"Red hidrográfica"},
	"resumen":                 {"Red hidrográfica de la cuenca del río Maipo"},
	"palabrasClave":           {"río, cuenca, maipo"},
	"proposito":               {"Planificación territorial"},
	"fechaCreacion":           {"2023-01-15"},
	"fechaActualizacion":      {"2024-02-20"},
	"organizacionResponsable": {"OTRO"},
	"otroOrganizacion":        {"Dirección General de Aguas"},
	"modificado":              {"No"},
	"contacto":                {"sig@example.cl"},
	"sistemaReferencia":       {"EPSG:32719"},
	"otroSistemaReferencia":   {"ignored"},
	"formatoDistribucion":     {"Shapefile"},
	"restricciones":           {"Uso público"},
	"idioma":                  {"OTRO"},
	"otroIdioma":              {"Mapudungun"},
	"conformidad":             {"ISO 19115"},
	"ruta":                    {`\\servidor\sig\hidrografia`},
}

func TestNewID(t *testing.T) {
	if id := NewID(submitted); id != "20240305140709" {
		t.Errorf("Incorrect ID - expected:%v, got:%v", "20240305140709", id)
	}
}

func TestFromForm(t *testing.T) {
	expected := Record{
		ID:              "20240305140709",
		Title:           "Red hidrográfica",
		Summary:         "Red hidrográfica de la cuenca del río Maipo",
		Keywords:        "río, cuenca, maipo",
		Purpose:         "Planificación territorial",
		Created:         "2023-01-15",
		Updated:         "2024-02-20",
		Organisation:    "Dirección General de Aguas",
		Modified:        "No",
		Contact:         "sig@example.cl",
		ReferenceSystem: "EPSG:32719",
		Format:          "Shapefile",
		Restrictions:    "Uso público",
		Language:        "Mapudungun",
		Conformity:      "ISO 19115",
		Path:            `\\servidor\sig\hidrografia`,
	}

	record, err := FromForm(submission, submitted)
	if err != nil {
		t.Fatalf("Unexpected error decoding form (%v)", err)
	}

	if !reflect.DeepEqual(*record, expected) {
		t.Errorf("Incorrect record\n   expected: %+v\n   got:      %+v\n", expected, *record)
	}
}

func TestFromFormWithMissingFields(t *testing.T) {
	values := url.Values{}
	for k, v := range submission {
		values[k] = v
	}

	delete(values, "titulo")
	delete(values, "otroIdioma")

	_, err := FromForm(values, submitted)

	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldsError, got %v", err)
	}

	if !reflect.DeepEqual(missing.Fields, []string{"titulo", "otroIdioma"}) {
		t.Errorf("Incorrect missing fields - expected:%v, got:%v", []string{"titulo", "otroIdioma"}, missing.Fields)
	}
}

func TestFromFormWithoutOtherField(t *testing.T) {
	values := url.Values{}
	for k, v := range submission {
		values[k] = v
	}

	delete(values, "otroSistemaReferencia")
	delete(values, "otroFormato")
	delete(values, "otroConformidad")

	if _, err := FromForm(values, submitted); err != nil {
		t.Errorf("Unexpected error for unused 'other' fields (%v)", err)
	}
}

func TestRow(t *testing.T) {
	record, _ := FromForm(submission, submitted)
	row := record.Row()

	if len(row) != len(Header()) {
		t.Fatalf("Row/header mismatch - header has %v columns, row has %v", len(Header()), len(row))
	}

	if row[0] != "20240305140709" || row[7] != "Dirección General de Aguas" || row[15] != `\\servidor\sig\hidrografia` {
		t.Errorf("Incorrect row %v", row)
	}
}

func TestFromRow(t *testing.T) {
	record, err := FromRow([]string{"20240305140709", " Red vial ", "Red vial nacional"})
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if record.ID != "20240305140709" || record.Title != "Red vial" || record.Summary != "Red vial nacional" || record.Path != "" {
		t.Errorf("Incorrect record %+v", *record)
	}

	if _, err := FromRow([]string{"", "Red vial"}); err == nil {
		t.Errorf("Expected error for record without ID")
	}

	if _, err := FromRow(make([]string, 17)); err == nil {
		t.Errorf("Expected error for record with too many columns")
	}
}

func TestWriteText(t *testing.T) {
	expected := `ID Único: 20240305140709
Título: Red hidrográfica
Resumen: Red hidrográfica de la cuenca del río Maipo
Palabras Clave: río, cuenca, maipo
Propósito: Planificación territorial
Fecha de Creación: 2023-01-15
Fecha de Actualización: 2024-02-20
Organización Responsable: Dirección General de Aguas
Modificado por Laboratorio: No
Contacto: sig@example.cl
Sistema de Referencia Espacial: EPSG:32719
Formato de Distribución: Shapefile
Restricciones de Uso: Uso público
Idioma: Mapudungun
Conformidad: ISO 19115
Ruta: \\servidor\sig\hidrografia
`

	record, _ := FromForm(submission, submitted)

	var b strings.Builder
	if err := record.WriteText(&b); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect text\n   expected: %s\n   got:      %s\n", expected, b.String())
	}
}

func TestFilename(t *testing.T) {
	tests := map[string]string{
		"Red hidrográfica":  "20240305140709_Red hidrográfica.txt",
		"Cuencas 1/2":       "20240305140709_Cuencas 1_2.txt",
		` ..\Suelos:"uso" `: "20240305140709_.._Suelos_uso_.txt",
	}

	for title, expected := range tests {
		record := Record{ID: "20240305140709", Title: title}
		if filename := record.Filename(); filename != expected {
			t.Errorf("Incorrect filename for %q - expected:%q, got:%q", title, expected, filename)
		}
	}
}
