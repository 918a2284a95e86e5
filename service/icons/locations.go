package icons

import "path/filepath"

// sizeBuckets are the theme subdirectories searched, in priority order.
var sizeBuckets = []string{
	"128x128",
	"scalable",
	"256x256",
	"64x64",
	"32x32",
}

// themeAppDirs returns the directories that may contain application icons
// of the given theme, root-major and bucket-minor.
func themeAppDirs(roots []string, theme string) []string {
	dirs := make([]string, 0, len(roots)*len(sizeBuckets))
	for _, root := range roots {
		themeDir := filepath.Join(root, "icons", theme)
		for _, bucket := range sizeBuckets {
			dirs = append(dirs, filepath.Join(themeDir, bucket, "apps"))
		}
	}
	return dirs
}
