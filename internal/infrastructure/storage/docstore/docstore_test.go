package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/talentscreen/screening-api/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return store
}

func TestStore_Store(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Store("resume.pdf", []byte("%PDF-1.4 data"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if name != "resume.pdf" {
		t.Fatalf("expected resume.pdf, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(store.dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "%PDF-1.4 data" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestStore_CollisionSuffix(t *testing.T) {
	store := newTestStore(t)

	first, _ := store.Store("resume.pdf", []byte("a"))
	second, err := store.Store("resume.pdf", []byte("b"))
	if err != nil {
		t.Fatalf("second Store failed: %v", err)
	}
	if first != "resume.pdf" || second != "resume_1.pdf" {
		t.Fatalf("expected resume.pdf then resume_1.pdf, got %q then %q", first, second)
	}

	third, err := store.Store("resume.pdf", []byte("c"))
	if err != nil {
		t.Fatalf("third Store failed: %v", err)
	}
	if third != "resume_2.pdf" {
		t.Fatalf("expected resume_2.pdf, got %q", third)
	}

	// earlier files untouched
	data, _ := os.ReadFile(filepath.Join(store.dir, "resume.pdf"))
	if string(data) != "a" {
		t.Fatalf("original overwritten: %q", data)
	}
}

func TestStore_RejectsNonPDF(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Store("notes.txt", []byte("x")); err != domain.ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := store.Store("archive.pdf.exe", []byte("x")); err != domain.ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType for double extension, got %v", err)
	}
}

func TestStore_UppercaseExtension(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Store("RESUME.PDF", []byte("x")); err != nil {
		t.Fatalf("uppercase extension must be accepted: %v", err)
	}
}

func TestStore_SanitizesTraversal(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Store("../../etc/evil.pdf", []byte("x"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if name != "evil.pdf" {
		t.Fatalf("expected evil.pdf, got %q", name)
	}
	if _, err := os.Stat(filepath.Join(store.dir, "..", "..", "etc", "evil.pdf")); err == nil {
		t.Fatalf("file escaped the store directory")
	}
}

func TestStore_SanitizesWindowsPathAndSpaces(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Store(`C:\Users\me\my resume.pdf`, []byte("x"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if name != "my_resume.pdf" {
		t.Fatalf("expected my_resume.pdf, got %q", name)
	}
}

func TestStore_EmptyBaseName(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Store(".pdf", []byte("x"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if name != "resume.pdf" {
		t.Fatalf("expected fallback resume.pdf, got %q", name)
	}
}

func TestStore_Exhaustion(t *testing.T) {
	store := newTestStore(t)
	store.maxAttempts = 2

	for i := 0; i < 3; i++ {
		if _, err := store.Store("cv.pdf", []byte("x")); err != nil {
			t.Fatalf("Store %d failed: %v", i, err)
		}
	}
	if _, err := store.Store("cv.pdf", []byte("x")); err != domain.ErrStorageExhausted {
		t.Fatalf("expected ErrStorageExhausted, got %v", err)
	}
}

func TestStore_Path(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Store("ok.pdf", []byte("x"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	full, err := store.Path(name)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if full != filepath.Join(store.dir, name) {
		t.Fatalf("unexpected path %q", full)
	}
}

func TestStore_PathRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"", "../secrets.pdf", "a/b.pdf", "..%2fetc", "missing.pdf"} {
		if _, err := store.Path(name); err != domain.ErrDocumentNotFound {
			t.Fatalf("Path(%q): expected ErrDocumentNotFound, got %v", name, err)
		}
	}
}
