package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/opal/graphics/driver"
)

func TestLoadShaderSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.vert")
	src := "#version 410 core\nvoid main() {}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	loaded, err := LoadShaderSource(path, driver.StageVertex)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, driver.StageVertex, loaded.Kind)
	assert.Equal(t, src, loaded.Source)

	_, err = LoadShaderSource(filepath.Join(dir, "missing.vert"), driver.StageVertex)
	require.Error(t, err)
}

func TestStageKindForPath(t *testing.T) {
	tests := []struct {
		path string
		want driver.StageKind
	}{
		{"shaders/basic.vert", driver.StageVertex},
		{"basic.vs", driver.StageVertex},
		{"shaders/basic.frag", driver.StageFragment},
		{"basic.fs", driver.StageFragment},
		{"basic.geom", driver.StageGeometry},
		{"basic.gs", driver.StageGeometry},
	}
	for _, tt := range tests {
		kind, err := StageKindForPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, kind, tt.path)
	}

	_, err := StageKindForPath("shader.glsl")
	require.Error(t, err)
}
