package icons

import (
	"errors"
	"fmt"
	"os"

	"github.com/vincent-petithory/dataurl"

	"github.com/safing/xdgapps/base/utils"
	"github.com/safing/xdgapps/service/raster"
)

// Kind describes the format of an icon asset.
type Kind uint8

// Icon kinds.
const (
	Unknown Kind = iota
	Raster
	Vector
	Scene
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Raster:
		return "raster"
	case Vector:
		return "vector"
	case Scene:
		return "scene"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Candidate is a classified icon file that may still need conversion before
// it can be displayed. Kind is Raster, Vector or Scene.
type Candidate struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
}

// Resolved is a displayable icon. Kind is Raster or Scene.
type Resolved struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
}

// Errors.
var (
	ErrUnknownKind   = errors.New("unknown icon kind")
	ErrNotEmbeddable = errors.New("icon cannot be embedded")
)

// Classify returns the candidate for path based on its extension.
// The extension is matched case sensitive. No file system access is done.
func Classify(path string) (c Candidate, ok bool) {
	switch utils.FileExt(path) {
	case ".png":
		return Candidate{Kind: Raster, Path: path}, true
	case ".svg":
		return Candidate{Kind: Vector, Path: path}, true
	case ".glb", ".gltf":
		return Candidate{Kind: Scene, Path: path}, true
	default:
		return Candidate{}, false
	}
}

// Process turns the candidate into a displayable icon. Vector images are
// rendered to a size x size PNG in cacheDir, all other kinds are returned as
// they are.
func (c Candidate) Process(size int, cacheDir string) (Resolved, error) {
	switch c.Kind {
	case Raster, Scene:
		return Resolved{Kind: c.Kind, Path: c.Path}, nil
	case Vector:
		pngPath, err := raster.RenderSVGToPNG(cacheDir, c.Path, size)
		if err != nil {
			return Resolved{}, fmt.Errorf("failed to render %s: %w", c.Path, err)
		}
		return Resolved{Kind: Raster, Path: pngPath}, nil
	default:
		return Resolved{}, fmt.Errorf("%w: %s", ErrUnknownKind, c.Path)
	}
}

// DataURL returns the icon data as a data URL.
func (r Resolved) DataURL() (string, error) {
	if r.Kind != Raster {
		return "", fmt.Errorf("%w: %s icon %s", ErrNotEmbeddable, r.Kind, r.Path)
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read icon %s: %w", r.Path, err)
	}
	return dataurl.EncodeBytes(data), nil
}
