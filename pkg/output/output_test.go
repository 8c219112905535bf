package output

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/qrgen/pkg/errors"
)

func TestWriteBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")

	if err := WriteBytes(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<svg/>" {
		t.Errorf("content = %q", got)
	}
	assertOnlyFile(t, dir, "out.svg")
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteBytes(path, []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want new", got)
	}
}

func TestWriteFileCallbackFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	err := WriteFile(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return stderrors.New("disk full")
	})
	if !errors.Is(err, errors.ErrCodeSinkWrite) {
		t.Fatalf("err = %v, want SINK_WRITE", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("destination should not exist after a failed write")
	}
	assertOnlyFile(t, dir)
}

func TestWriteFileKeepsCodedErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	err := WriteFile(path, func(io.Writer) error {
		return errors.New(errors.ErrCodeInvalidParams, "scale must be at least 1, got 0")
	})
	if !errors.Is(err, errors.ErrCodeInvalidParams) {
		t.Errorf("err = %v, want INVALID_PARAMS passed through", err)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.svg")
	err := WriteBytes(path, []byte("x"))
	if !errors.Is(err, errors.ErrCodeSinkAcquisition) {
		t.Errorf("err = %v, want SINK_ACQUISITION", err)
	}
}

func assertOnlyFile(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(names) {
		var got []string
		for _, e := range entries {
			got = append(got, e.Name())
		}
		t.Fatalf("dir entries = %v, want %v", got, names)
	}
	for i, e := range entries {
		if e.Name() != names[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name(), names[i])
		}
	}
}
