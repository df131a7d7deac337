package httpd

import (
	"fmt"
)

// MissingInputError is returned when a keyword request does not include any summary text.
type MissingInputError struct {
}

func (e *MissingInputError) Error() string {
	return "No se proporcionó un resumen"
}

// ExtractionError wraps an unexpected failure while decoding a keyword request or extracting
// the keywords.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
