package domain

import "errors"

// ErrUnsupportedType rejects uploads that are not PDF documents.
var ErrUnsupportedType = errors.New("unsupported document type")

// ErrDocumentNotFound is returned when a stored document cannot be resolved
// by its storage name.
var ErrDocumentNotFound = errors.New("document not found")

// ErrStorageExhausted is returned when collision resolution cannot find a
// free storage name within the configured number of attempts.
var ErrStorageExhausted = errors.New("storage name space exhausted")

// Extraction is the best-effort result of pulling text out of a stored
// document. Extraction never blocks the pipeline: a failure is carried as
// Failed plus Cause instead of an error.
type Extraction struct {
	Text   string
	Failed bool
	Cause  string
}
