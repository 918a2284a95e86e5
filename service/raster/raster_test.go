package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
	<ellipse cx="50" cy="80" rx="46" ry="19" fill="#07c"/>
	<path d="M43,0c-6,25,16,22,1,52c11,3,19,0,19-22c38,18,16,63-12,64c-25,2-55-39-8-94" fill="#e34"/>
	<path d="M34,41c-6,39,29,32,33,7c39,42-69,63-33-7" fill="#fc2"/>
</svg>`

func writeSVG(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderSVGToPNG(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	svgPath := writeSVG(t, srcDir, "test_input.svg", testSVG)
	outDir := filepath.Join(t.TempDir(), "cache", "icons")

	pngPath, err := RenderSVGToPNG(outDir, svgPath, 200)
	require.NoError(t, err)

	assert.Equal(t, "test_input.png", filepath.Base(pngPath))
	assert.Equal(t, ".png", filepath.Ext(pngPath))
	assert.Equal(t, outDir, filepath.Dir(pngPath))

	img, err := imaging.Open(pngPath)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// The ellipse covers the lower middle of the canvas.
	_, _, _, alpha := img.At(100, 160).RGBA()
	assert.NotZero(t, alpha)
	// The top left corner stays transparent.
	_, _, _, alpha = img.At(0, 0).RGBA()
	assert.Zero(t, alpha)
}

func TestRenderSVGToPNGIdempotent(t *testing.T) {
	t.Parallel()

	svgPath := writeSVG(t, t.TempDir(), "again.svg", testSVG)
	outDir := t.TempDir()

	first, err := RenderSVGToPNG(outDir, svgPath, 64)
	require.NoError(t, err)
	firstData, err := os.ReadFile(first)
	require.NoError(t, err)

	second, err := RenderSVGToPNG(outDir, svgPath, 64)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstData, secondData)
}

func TestRenderSVGToPNGFitsWidth(t *testing.T) {
	t.Parallel()

	// Twice as wide as high: only the upper half of the canvas is drawn.
	wide := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
	<rect x="0" y="0" width="200" height="100" fill="#000"/>
</svg>`
	svgPath := writeSVG(t, t.TempDir(), "wide.svg", wide)

	pngPath, err := RenderSVGToPNG(t.TempDir(), svgPath, 100)
	require.NoError(t, err)

	img, err := imaging.Open(pngPath)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	_, _, _, alpha := img.At(50, 25).RGBA()
	assert.NotZero(t, alpha)
	_, _, _, alpha = img.At(50, 75).RGBA()
	assert.Zero(t, alpha)
}

func TestRenderSVGToPNGSymlinkedSource(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	target := writeSVG(t, srcDir, "real-name.svg", testSVG)
	link := filepath.Join(srcDir, "link-name.svg")
	require.NoError(t, os.Symlink(target, link))

	pngPath, err := RenderSVGToPNG(t.TempDir(), link, 32)
	require.NoError(t, err)
	assert.Equal(t, "real-name.png", filepath.Base(pngPath))
}

func TestRenderSVGToPNGErrors(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	// Missing source.
	_, err := RenderSVGToPNG(outDir, filepath.Join(srcDir, "missing.svg"), 200)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, ErrInvalidData)

	// Not an SVG at all.
	_, err = RenderSVGToPNG(outDir, writeSVG(t, srcDir, "text.svg", "this is not an image"), 200)
	require.ErrorIs(t, err, ErrInvalidData)

	// Broken markup.
	_, err = RenderSVGToPNG(outDir, writeSVG(t, srcDir, "broken.svg", `<svg viewBox="0 0 10 10"><path d="M0,0`), 200)
	require.ErrorIs(t, err, ErrInvalidData)

	// Invalid size.
	_, err = RenderSVGToPNG(outDir, writeSVG(t, srcDir, "ok.svg", testSVG), 0)
	require.ErrorIs(t, err, ErrInvalidData)

	// Well-formed XML, but not an SVG.
	_, err = RenderSVGToPNG(outDir, writeSVG(t, srcDir, "other.svg", `<html><body/></html>`), 200)
	require.ErrorIs(t, err, ErrInvalidData)

	// Nothing was written.
	assert.NoDirExists(t, outDir)
}

func TestRenderSVGToPNGDefaultSize(t *testing.T) {
	t.Parallel()

	// No view box and no size: the document is 100 x 100 user units.
	unsized := `<svg xmlns="http://www.w3.org/2000/svg">
	<rect x="0" y="0" width="50" height="50" fill="#000"/>
</svg>`
	svgPath := writeSVG(t, t.TempDir(), "unsized.svg", unsized)

	pngPath, err := RenderSVGToPNG(t.TempDir(), svgPath, 200)
	require.NoError(t, err)

	img, err := imaging.Open(pngPath)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// The rect covers the upper left quarter.
	_, _, _, alpha := img.At(50, 50).RGBA()
	assert.NotZero(t, alpha)
	_, _, _, alpha = img.At(150, 150).RGBA()
	assert.Zero(t, alpha)
}

func TestRenderSVGToPNGOutDirIsFile(t *testing.T) {
	t.Parallel()

	svgPath := writeSVG(t, t.TempDir(), "icon.svg", testSVG)
	notes := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("keep me"), 0o600))

	_, err := RenderSVGToPNG(notes, svgPath, 64)
	require.Error(t, err)

	data, err := os.ReadFile(notes)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}
