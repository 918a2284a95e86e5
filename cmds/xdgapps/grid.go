package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/service/appgrid"
	"github.com/safing/xdgapps/service/icons"
)

var (
	gridOpts     appgrid.Options
	withDataURLs bool
	cacheListing bool

	gridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Load applications with displayable icons",
		Args:  cobra.NoArgs,
		RunE:  grid,
	}
)

func init() {
	rootCmd.AddCommand(gridCmd)

	flags := gridCmd.Flags()
	flags.IntVar(&gridOpts.Limit, "limit", appgrid.DefaultLimit, "maximum number of applications, 0 for all")
	flags.BoolVar(&gridOpts.InclusiveLimit, "inclusive-limit", false, "load one application more than the limit")
	flags.StringVar(&gridOpts.Filter, "filter", "", "glob pattern for desktop entry file names")
	flags.StringVar(&gridOpts.Category, "category", "", "only load applications of this category")
	flags.IntVar(&gridOpts.IconSize, "size", appgrid.DefaultIconSize, "edge length of rendered icons in pixels")
	flags.StringVar(&cacheDir, "cache-dir", defaultCacheDir(), "directory for rendered icons")
	flags.IntVar(&gridOpts.Workers, "workers", 0, "applications processed in parallel, 0 for one per CPU")
	flags.BoolVar(&withDataURLs, "data-url", false, "embed raster icons as data URLs")
	flags.BoolVar(&cacheListing, "cache-listing", false, "read every icon theme directory only once")
}

type gridApp struct {
	*appgrid.App

	DataURLs []string `json:"dataURLs,omitempty"`
}

func grid(cmd *cobra.Command, args []string) error {
	gridOpts.CacheDir = cacheDir
	if cacheListing {
		lister := icons.NewListingCache(icons.DirLister{}, 0, time.Minute)
		gridOpts.Resolver = icons.NewResolver(env, icons.WithLister(lister))
	}

	apps, err := appgrid.Load(cmd.Context(), env, gridOpts)
	if err != nil {
		// Partial results are still useful.
		log.Warningf("some icons failed: %s", err)
	}

	out := make([]gridApp, 0, len(apps))
	for _, app := range apps {
		ga := gridApp{App: app}
		if withDataURLs {
			for _, icon := range app.Icons {
				url, err := icon.DataURL()
				if err != nil {
					log.Debugf("no data url for %s: %s", icon.Path, err)
					continue
				}
				ga.DataURLs = append(ga.DataURLs, url)
			}
		}
		out = append(out, ga)
	}

	return printJSON(cmd.OutOrStdout(), out)
}
