package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/opal/graphics/driver"
)

// ShaderSource is shader text loaded from disk together with the stage
// kind the caller assigned to it.
type ShaderSource struct {
	Path   string
	Kind   driver.StageKind
	Source string
}

// LoadShaderSource reads shader text from a file. The stage kind is
// always supplied by the caller; the file extension never decides it.
func LoadShaderSource(path string, kind driver.StageKind) (*ShaderSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &ShaderSource{Path: path, Kind: kind, Source: string(data)}, nil
}

// StageKindForPath guesses a stage kind from common file extension
// conventions (.vert/.vs, .frag/.fs, .geom/.gs). This is a packaging
// convenience only; prefer passing the kind explicitly.
func StageKindForPath(path string) (driver.StageKind, error) {
	switch filepath.Ext(path) {
	case ".vert", ".vs":
		return driver.StageVertex, nil
	case ".frag", ".fs":
		return driver.StageFragment, nil
	case ".geom", ".gs":
		return driver.StageGeometry, nil
	}
	return 0, fmt.Errorf("no stage kind convention for extension of %q", path)
}
