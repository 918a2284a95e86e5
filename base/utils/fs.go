package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

const isWindows = runtime.GOOS == "windows"

// EnsureDirectory ensures that the given directory and all its missing parents
// exist. Newly created directories get the given permissions, existing
// directories are left as they are.
// If path exists but is not a directory, an error is returned and the path is
// left untouched.
func EnsureDirectory(path string, perm FSPermission) error {
	// open path
	f, err := os.Stat(path)
	if err == nil {
		// file exists
		if f.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	// file does not exist
	if errors.Is(err, fs.ErrNotExist) {
		err = os.MkdirAll(path, perm.AsUnixDirExecPermission())
		if err != nil {
			return fmt.Errorf("could not create dir %s: %w", path, err)
		}
		// Set permissions.
		err = SetDirPermission(path, perm)
		// Ignore windows permission error. For none admin users it will always fail.
		if !isWindows {
			return err
		}
		return nil
	}
	// other error opening path
	return fmt.Errorf("failed to access %s: %w", path, err)
}

// PathExists returns whether the given path (file or dir) exists.
// Symbolic links are followed.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns whether the given path exists and is a directory.
// Symbolic links are followed.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
