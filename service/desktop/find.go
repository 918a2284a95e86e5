package desktop

import (
	"os"
	"path/filepath"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/base/utils"
	"github.com/safing/xdgapps/service/xdg"
)

// Extension is the file extension of desktop entry files.
const Extension = ".desktop"

// FindFiles returns all desktop entry files in the application directories
// of the given environment.
// The order of the result depends on the directory order and is not sorted.
func FindFiles(env *xdg.Env) []string {
	return FindFilesIn(env.ApplicationDirs(), Extension)
}

// FindFilesIn recursively collects the regular files with the given extension
// in dirs. Symbolic links are followed. Directories that do not exist or
// cannot be read are skipped.
// Every path is returned once, even if it is reachable from multiple dirs.
func FindFilesIn(dirs []string, ext string) []string {
	w := &walker{
		ext:  ext,
		seen: make(map[string]struct{}),
	}
	for _, dir := range dirs {
		if !utils.IsDir(dir) {
			log.Tracef("desktop: skipping application dir %s", dir)
			continue
		}
		w.walk(dir, nil)
	}
	return w.found
}

type walker struct {
	ext   string
	seen  map[string]struct{}
	found []string
}

// walk descends into dir. ancestors holds the resolved paths of all
// directories above dir and is used to break symlink loops.
func (w *walker) walk(dir string, ancestors []string) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		log.Tracef("desktop: failed to resolve %s: %s", dir, err)
		return
	}
	for _, ancestor := range ancestors {
		if ancestor == resolved {
			log.Debugf("desktop: skipping symlink loop at %s", dir)
			return
		}
	}
	ancestors = append(ancestors, resolved)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Tracef("desktop: failed to read %s: %s", dir, err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks.
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		switch {
		case info.IsDir():
			w.walk(path, ancestors)
		case info.Mode().IsRegular():
			if utils.FileExt(entry.Name()) != w.ext {
				continue
			}
			if _, ok := w.seen[path]; ok {
				continue
			}
			w.seen[path] = struct{}{}
			w.found = append(w.found, path)
		}
	}
}
