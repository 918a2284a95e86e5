package icons

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/base/utils"
	"github.com/safing/xdgapps/service/desktop"
	"github.com/safing/xdgapps/service/xdg"
)

// Resolver finds the icon candidates of desktop entries.
// It is safe for concurrent use if its Lister is.
type Resolver struct {
	env    *xdg.Env
	lister Lister
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLister sets the Lister used to read theme directories.
func WithLister(lister Lister) Option {
	return func(r *Resolver) {
		r.lister = lister
	}
}

// NewResolver returns a resolver searching the icon theme configured in env.
// By default, theme directories are read from disk on every call.
func NewResolver(env *xdg.Env, opts ...Option) *Resolver {
	r := &Resolver{
		env:    env,
		lister: DirLister{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the icon candidates of the given desktop entry.
func (r *Resolver) Resolve(d *desktop.Descriptor) []Candidate {
	iconName, ok := d.IconName()
	if !ok {
		return nil
	}
	return r.ResolveIcon(d.Path, iconName)
}

// ResolveIcon returns the icon candidates for iconName of the entry at
// entryPath.
//
// If iconName joined onto entryPath exists, only that file is considered:
// it is returned if it can be classified, else nothing is returned and the
// theme is not searched. Note that entryPath itself is the base of the join,
// not its parent directory. An absolute iconName replaces entryPath.
//
// Otherwise all files named iconName (ignoring the extension) in the app
// directories of the icon theme are returned, in search order.
func (r *Resolver) ResolveIcon(entryPath, iconName string) []Candidate {
	// Check for a direct path.
	direct := iconName
	if !filepath.IsAbs(direct) {
		direct = filepath.Join(entryPath, iconName)
	}
	if utils.PathExists(direct) {
		c, ok := Classify(direct)
		if !ok {
			log.Tracef("icons: unsupported icon file %s", direct)
			return nil
		}
		return []Candidate{c}
	}

	// Search the icon theme.
	roots, ok := r.env.IconRoots()
	if !ok {
		log.Tracef("icons: XDG_DATA_DIRS not set, skipping theme search for %s", iconName)
		return nil
	}

	var candidates []Candidate
	for _, dir := range themeAppDirs(roots, r.env.Theme()) {
		candidates = append(candidates, r.searchDirectory(dir, iconName)...)
	}
	return candidates
}

func (r *Resolver) searchDirectory(dir, iconName string) []Candidate {
	names, err := r.lister.List(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debugf("icons: failed to read %s: %s", dir, err)
		}
		return nil
	}

	var found []Candidate
	for _, name := range names {
		if utils.FileStem(name) != iconName {
			continue
		}
		if c, ok := Classify(filepath.Join(dir, name)); ok {
			found = append(found, c)
		}
	}
	return found
}
