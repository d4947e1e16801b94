package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gomirror "github.com/jdginn/go-mirror-studio/mirror"
)

func TestEnclosingObjects(t *testing.T) {
	objects := []gomirror.Object{
		{ID: "box", Kind: gomirror.Target, Position: gomirror.V(0, 0), Width: 2, Depth: 2},
		{ID: "ghost", Kind: gomirror.Phantom, Position: gomirror.V(0, 0), Width: 2, Depth: 2},
		{ID: "wall", Kind: gomirror.Wall, Position: gomirror.V(0, 0), Width: 10},
	}

	assert.Equal(t, []string{"box"}, enclosingObjects(objects, gomirror.Observer{Position: gomirror.V(0.5, 0.5)}))
	assert.Empty(t, enclosingObjects(objects, gomirror.Observer{Position: gomirror.V(3, 0)}))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, viewer string) string {
		path := filepath.Join(dir, name)
		content := "objects:\n  inline:\n    - {id: cup, kind: target, position: [4, 0], width: 2, depth: 2}\nviewer:\n  position: " + viewer + "\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	assert.NoError(t, run(write("outside.yaml", "[0, 0]")))
	assert.ErrorContains(t, run(write("inside.yaml", "[4, 0.5]")), "cup")
	assert.Error(t, run(filepath.Join(dir, "missing.yaml")))
}
