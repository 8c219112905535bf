// Package output writes rendered artifacts to files without ever leaving a
// partial file behind.
//
// Every write goes to a temporary sibling of the destination
// (`<path>.<uuid>.tmp`) which is renamed into place only after the writer
// callback and the close have both succeeded. On any failure the temporary
// is removed and the destination is untouched.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/matzehuels/qrgen/pkg/errors"
)

// WriteFunc streams an artifact into w.
type WriteFunc func(w io.Writer) error

// WriteFile atomically writes the bytes produced by fn to path.
//
// Failing to create the temporary file is reported as
// [errors.ErrCodeSinkAcquisition]. Failures from fn that already carry a code
// are returned as-is; all other write, close and rename failures are
// reported as [errors.ErrCodeSinkWrite].
func WriteFile(path string, fn WriteFunc) (err error) {
	tmp := tempName(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSinkAcquisition, err, "create %s", path)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = fn(f); err != nil {
		_ = f.Close()
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "close %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "rename into %s", path)
	}
	return nil
}

// WriteBytes atomically writes data to path.
func WriteBytes(path string, data []byte) error {
	return WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
}
