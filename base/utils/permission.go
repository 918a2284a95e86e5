package utils

import "io/fs"

// FSPermission describes a permission level for files and directories.
type FSPermission uint8

// Permission levels.
const (
	AdminOnlyPermission FSPermission = iota
	PublicReadPermission
	PublicWritePermission
)

// AsUnixDirExecPermission return the corresponding unix permission for a directory or executable.
func (perm FSPermission) AsUnixDirExecPermission() fs.FileMode {
	switch perm {
	case AdminOnlyPermission:
		return 0o700
	case PublicReadPermission:
		return 0o755
	case PublicWritePermission:
		return 0o777
	}

	return 0
}

// AsUnixFilePermission return the corresponding unix permission for a regular file.
func (perm FSPermission) AsUnixFilePermission() fs.FileMode {
	switch perm {
	case AdminOnlyPermission:
		return 0o600
	case PublicReadPermission:
		return 0o644
	case PublicWritePermission:
		return 0o666
	}

	return 0
}
