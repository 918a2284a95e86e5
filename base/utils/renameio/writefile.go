package renameio

import (
	"io"
	"os"
	"runtime"

	"github.com/hectane/go-acl"
)

// WriteFile mirrors os.WriteFile, replacing an existing file with the same
// name atomically.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return WriteFileFunc(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteFileFunc is like WriteFile, but streams the content through write.
// If write fails, the destination is left untouched.
func WriteFileFunc(filename string, perm os.FileMode, write func(w io.Writer) error) error {
	t, err := TempFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Cleanup()
	}()

	// Set permissions before writing data.
	if runtime.GOOS == "windows" {
		err = acl.Chmod(t.Name(), perm)
	} else {
		err = t.Chmod(perm)
	}
	if err != nil {
		return err
	}

	if err := write(t); err != nil {
		return err
	}

	return t.CloseAtomicallyReplace()
}
