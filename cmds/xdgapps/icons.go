package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/safing/xdgapps/service/desktop"
	"github.com/safing/xdgapps/service/icons"
	"github.com/safing/xdgapps/service/raster"
)

var (
	iconSize int
	cacheDir string
	outDir   string

	iconsCmd = &cobra.Command{
		Use:   "icons <file>",
		Short: "Print the icon candidates of a desktop entry file",
		Args:  cobra.ExactArgs(1),
		RunE:  listIcons,
	}

	renderCmd = &cobra.Command{
		Use:   "render <svg>",
		Short: "Render an SVG file to a square PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  render,
	}
)

func init() {
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().IntVar(&iconSize, "size", 200, "edge length of the PNG in pixels")
	renderCmd.Flags().StringVar(&outDir, "out", ".", "directory to write the PNG to")
}

func listIcons(cmd *cobra.Command, args []string) error {
	entry, err := desktop.ParseFile(args[0])
	if err != nil {
		return err
	}

	candidates := icons.NewResolver(env).Resolve(entry)
	if candidates == nil {
		candidates = []icons.Candidate{}
	}
	return printJSON(cmd.OutOrStdout(), candidates)
}

func render(cmd *cobra.Command, args []string) error {
	pngPath, err := raster.RenderSVGToPNG(outDir, args[0], iconSize)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), pngPath)
	return err
}

// defaultCacheDir returns the directory for rendered icons.
func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "xdgapps", "icons")
	}
	return filepath.Join(dir, "xdgapps", "icons")
}
