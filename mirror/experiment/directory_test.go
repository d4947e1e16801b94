package experiment

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	ts := time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC)
	id := GenerateRunID(ts)
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-20240309-170405\.000$`), id)
}

func TestCreateRunDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), RunsDir)

	run, err := CreateRunDirectory(root)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(run.Path))
	info, err := os.Stat(run.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	target, err := os.Readlink(filepath.Join(root, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(t, run.ID, target)

	assert.Equal(t, filepath.Join(run.Path, "scene.yaml"), run.GetFilePath("scene.yaml"))
}
