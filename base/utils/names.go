package utils

import "path/filepath"

// FileExt returns the extension of the last element of path, including the
// dot. Unlike filepath.Ext, a leading dot does not start an extension, so
// ".png" has no extension and "archive." has the empty extension ".".
func FileExt(path string) string {
	name := filepath.Base(path)
	for i := len(name) - 1; i > 0; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return ""
}

// FileStem returns the last element of path without its extension,
// as defined by FileExt.
func FileStem(path string) string {
	name := filepath.Base(path)
	ext := FileExt(name)
	return name[:len(name)-len(ext)]
}
