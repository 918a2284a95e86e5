// Package xdg holds the XDG base directory settings that drive desktop entry
// discovery and icon theme lookup. The process environment is read once by
// LoadEnv and passed on explicitly from there.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Defaults.
const (
	DefaultDataDirs  = "/usr/local/share:/usr/share"
	DefaultIconTheme = "hicolor"
)

// Env holds the XDG settings of a process.
type Env struct {
	// DataDirs is the raw, colon separated XDG_DATA_DIRS value.
	// It is nil if the variable is not set.
	DataDirs *string `env:"XDG_DATA_DIRS"`

	// IconTheme is the name of the icon theme to search.
	IconTheme string `env:"XDG_ICON_THEME" envDefault:"hicolor"`

	// Home is the home directory of the user.
	Home string `env:"HOME"`
}

// LoadEnv reads the settings from the process environment.
func LoadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if e.Home == "" {
		// Not fatal, the local applications directory is skipped then.
		e.Home, _ = os.UserHomeDir()
	}
	return e, nil
}

// EnvFromMap reads the settings from the given variables instead of the
// process environment.
func EnvFromMap(vars map[string]string) (*Env, error) {
	e := &Env{}
	if err := env.ParseWithOptions(e, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ApplicationDirs returns the directories to search for desktop entries:
// the "applications" directory of every data directory, followed by the
// local applications directory of the user.
// If XDG_DATA_DIRS is not set, DefaultDataDirs is used.
func (e *Env) ApplicationDirs() []string {
	dataDirs := DefaultDataDirs
	if e.DataDirs != nil {
		dataDirs = *e.DataDirs
	}

	split := strings.Split(dataDirs, ":")
	dirs := make([]string, 0, len(split)+1)
	for _, dir := range split {
		dirs = append(dirs, filepath.Join(dir, "applications"))
	}
	if e.Home != "" {
		dirs = append(dirs, filepath.Join(e.Home, ".local", "share", "applications"))
	}
	return dirs
}

// IconRoots returns the data directories to search for icon themes.
// Unlike ApplicationDirs, there is no default: if XDG_DATA_DIRS is not set,
// ok is false.
func (e *Env) IconRoots() (roots []string, ok bool) {
	if e.DataDirs == nil {
		return nil, false
	}
	return strings.Split(*e.DataDirs, ":"), true
}

// Theme returns the icon theme to use.
func (e *Env) Theme() string {
	if e.IconTheme == "" {
		return DefaultIconTheme
	}
	return e.IconTheme
}
