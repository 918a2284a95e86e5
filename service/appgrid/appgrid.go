// Package appgrid loads the installed applications together with displayable
// icons, ready to be laid out by a launcher.
package appgrid

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/service/desktop"
	"github.com/safing/xdgapps/service/icons"
	"github.com/safing/xdgapps/service/xdg"
)

// Defaults.
const (
	DefaultLimit    = 50
	DefaultIconSize = 200
)

// Options configures Load.
type Options struct {
	// Limit is the maximum number of applications to load.
	// Zero or less means no limit.
	Limit int

	// InclusiveLimit loads one application more than Limit, which is what
	// the original grid launcher did.
	InclusiveLimit bool

	// Filter is a glob pattern matched against the base name of desktop
	// entry files, eg. "org.gnome.*". Empty matches all.
	Filter string

	// Category only keeps applications that list the given category.
	Category string

	// IconSize is the edge length in pixels of rendered vector icons.
	IconSize int

	// CacheDir is where rendered vector icons are stored.
	CacheDir string

	// Workers is the number of applications processed in parallel.
	// Defaults to the number of CPUs.
	Workers int

	// Resolver is used to find icons. If nil, a resolver for the given
	// environment is created.
	Resolver *icons.Resolver
}

// App is an application with its icons.
type App struct {
	Entry      *desktop.Descriptor `json:"entry"`
	Candidates []icons.Candidate   `json:"candidates,omitempty"`
	Icons      []icons.Resolved    `json:"icons,omitempty"`
}

// Load discovers, parses and filters the desktop entries of env and resolves
// their icons.
//
// Entry files that cannot be parsed are skipped. Which entries are kept when
// a limit is set depends on the discovery order, which is not stable.
//
// Failing icons do not affect other icons or applications: all apps are
// returned, and the failures are returned as a combined error. If ctx is
// canceled, the returned error includes ctx.Err().
func Load(ctx context.Context, env *xdg.Env, opts Options) ([]*App, error) {
	entries, err := loadEntries(env, opts)
	if err != nil {
		return nil, err
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = icons.NewResolver(env)
	}
	iconSize := opts.IconSize
	if iconSize <= 0 {
		iconSize = DefaultIconSize
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	apps := make([]*App, len(entries))
	var (
		errs     *multierror.Error
		errsLock sync.Mutex
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, entry := range entries {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			app, err := loadApp(resolver, entry, iconSize, opts.CacheDir)
			apps[i] = app
			if err != nil {
				errsLock.Lock()
				errs = multierror.Append(errs, err)
				errsLock.Unlock()
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		errs = multierror.Append(errs, err)
	}

	// Drop apps that were not reached due to cancellation.
	apps = slices.DeleteFunc(apps, func(app *App) bool {
		return app == nil
	})
	return apps, errs.ErrorOrNil()
}

func loadEntries(env *xdg.Env, opts Options) ([]*desktop.Descriptor, error) {
	var matcher glob.Glob
	if opts.Filter != "" {
		var err error
		matcher, err = glob.Compile(opts.Filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", opts.Filter, err)
		}
	}

	limit := opts.Limit
	if limit > 0 && opts.InclusiveLimit {
		limit++
	}

	var entries []*desktop.Descriptor
	for _, path := range desktop.FindFiles(env) {
		if matcher != nil && !matcher.Match(filepath.Base(path)) {
			continue
		}

		entry, err := desktop.ParseFile(path)
		if err != nil {
			log.Debugf("appgrid: skipping %s: %s", path, err)
			continue
		}
		if opts.Category != "" && !slices.Contains(entry.Categories, opts.Category) {
			continue
		}

		entries = append(entries, entry)
		if limit > 0 && len(entries) >= limit {
			break
		}
	}
	return entries, nil
}

func loadApp(resolver *icons.Resolver, entry *desktop.Descriptor, iconSize int, cacheDir string) (*App, error) {
	app := &App{
		Entry:      entry,
		Candidates: resolver.Resolve(entry),
	}

	var errs *multierror.Error
	for _, candidate := range app.Candidates {
		icon, err := candidate.Process(iconSize, cacheDir)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", entry.Path, err))
			continue
		}
		app.Icons = append(app.Icons, icon)
	}
	return app, errs.ErrorOrNil()
}
