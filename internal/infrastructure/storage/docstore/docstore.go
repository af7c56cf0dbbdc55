// Package docstore persists uploaded resumes on disk under sanitized,
// collision-free names. Files are immutable once written and never deleted.
package docstore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

const allowedExt = ".pdf"

// maxNameAttempts bounds collision resolution; past this the request fails
// with ErrStorageExhausted instead of looping.
const maxNameAttempts = 1000

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store is a disk-backed ports.DocumentStore rooted at a single directory.
// Name resolution and the write happen under one mutex so two concurrent
// uploads cannot claim the same free name.
type Store struct {
	dir         string
	maxAttempts int
	mu          sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &Store{dir: dir, maxAttempts: maxNameAttempts}, nil
}

func (s *Store) Store(rawFilename string, data []byte) (string, error) {
	if strings.ToLower(filepath.Ext(rawFilename)) != allowedExt {
		return "", domain.ErrUnsupportedType
	}

	name := sanitize(rawFilename)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := name
	for i := 1; s.exists(candidate); i++ {
		if i > s.maxAttempts {
			return "", domain.ErrStorageExhausted
		}
		candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
	}

	if err := os.WriteFile(filepath.Join(s.dir, candidate), data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return candidate, nil
}

// Path resolves a storage name for read-only serving. Anything that does
// not sanitize to itself (path components, traversal, unsafe characters)
// is treated as not found.
func (s *Store) Path(storageName string) (string, error) {
	if storageName == "" || sanitize(storageName) != storageName {
		return "", domain.ErrDocumentNotFound
	}
	full := filepath.Join(s.dir, storageName)
	if _, err := os.Stat(full); err != nil {
		return "", domain.ErrDocumentNotFound
	}
	return full, nil
}

// sanitize strips directories and unsafe characters from a client-supplied
// filename. A name whose .pdf extension does not survive sanitization falls
// back to the generic "resume.pdf".
func sanitize(raw string) string {
	raw = strings.ReplaceAll(raw, "\\", "/")
	base := path.Base(raw)
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.TrimLeft(base, ".")
	if !strings.HasSuffix(strings.ToLower(base), allowedExt) {
		base = "resume" + allowedExt
	}
	return base
}

func (s *Store) exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}
