// Package renameio provides a way to atomically create or replace a file.
// Rendered icons are written through it, so a concurrent reader never sees
// a partially written image.
//
// Caveat: this package requires the file system rename(2) implementation to be
// atomic. Notably, this is not the case when using NFS with multiple clients:
// https://stackoverflow.com/a/41396801
package renameio
