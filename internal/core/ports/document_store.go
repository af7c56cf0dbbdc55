package ports

// DocumentStore persists uploaded resumes under sanitized, collision-free
// storage names. Stored documents are immutable and never deleted.
type DocumentStore interface {
	// Store validates the file type, resolves a collision-free name and
	// writes the bytes durably. Returns the resolved storage name, or
	// ErrUnsupportedType / ErrStorageExhausted.
	Store(rawFilename string, data []byte) (string, error)
	// Path resolves a storage name to an on-disk path for read-only
	// serving. Returns ErrDocumentNotFound for unknown or unsafe names.
	Path(storageName string) (string, error)
}
