// Package raster renders vector icons to PNG files.
package raster

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/base/utils"
	"github.com/safing/xdgapps/base/utils/renameio"
)

// Errors.
var (
	// ErrInvalidData is returned if the source is not a renderable SVG.
	ErrInvalidData = errors.New("invalid data")
	// ErrWrite is returned if the rendered image could not be written.
	ErrWrite = errors.New("failed to write image")
)

// Extension is the file extension of rendered images.
const Extension = ".png"

// defaultViewBoxSize is the width or height of a document that specifies
// neither a view box nor a size for that dimension.
const defaultViewBoxSize = 100

// RenderSVGToPNG renders the SVG at svgPath to a size x size PNG in outDir
// and returns the path of the PNG. outDir is created if it does not exist.
//
// The PNG is named after the resolved source file with the extension
// replaced. The image is scaled to fit the width of the canvas and placed at
// the top left corner. An existing PNG of the same name is replaced.
func RenderSVGToPNG(outDir, svgPath string, size int) (pngPath string, err error) {
	if size <= 0 {
		return "", fmt.Errorf("%w: invalid size %d", ErrInvalidData, size)
	}

	// Resolve source path.
	svgPath, err = canonicalPath(svgPath)
	if err != nil {
		return "", err
	}

	// Load and parse.
	data, err := os.ReadFile(svgPath)
	if err != nil {
		return "", err
	}
	icon, err := parseSVG(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidData, svgPath, err)
	}

	// Prepare output.
	if err := utils.EnsureDirectory(outDir, utils.PublicReadPermission); err != nil {
		return "", err
	}
	pngPath = filepath.Join(outDir, utils.FileStem(svgPath)+Extension)

	// Render and save.
	img := render(icon, size)
	err = renameio.WriteFileFunc(pngPath, utils.PublicReadPermission.AsUnixFilePermission(), func(w io.Writer) error {
		return gg.NewContextForImage(img).EncodePNG(w)
	})
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrWrite, pngPath, err)
	}

	log.Tracef("raster: rendered %s to %s at %dpx", svgPath, pngPath, size)
	return pngPath, nil
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return resolved, nil
}

func parseSVG(data []byte) (*oksvg.SvgIcon, error) {
	// oksvg accepts any document, check that it actually is an SVG.
	if !hasSVGRoot(data) {
		return nil, errors.New("document has no svg root element")
	}

	// Unsupported elements are ignored, as icon themes use plenty of them.
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = defaultViewBoxSize
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = defaultViewBoxSize
	}
	return icon, nil
}

// hasSVGRoot reports whether the first element of the document is an svg
// element.
func hasSVGRoot(data []byte) bool {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	for {
		token, err := decoder.Token()
		if err != nil {
			return false
		}
		if start, ok := token.(xml.StartElement); ok {
			return start.Name.Local == "svg"
		}
	}
}

// render draws the icon onto a transparent size x size canvas, scaled to fit
// the canvas width.
func render(icon *oksvg.SvgIcon, size int) *image.RGBA {
	scale := float64(size) / icon.ViewBox.W
	icon.SetTarget(0, 0, float64(size), icon.ViewBox.H*scale)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	return img
}
