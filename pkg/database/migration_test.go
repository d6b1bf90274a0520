package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_seed.sql", "001_init.sql", "README.md", "broken.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o755))

	files, err := listMigrationFiles(dir, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "001", files[0].version)
	assert.Equal(t, "init", files[0].name)
	assert.Equal(t, "002", files[1].version)
	assert.Equal(t, "seed", files[1].name)
}

func TestListMigrationFilesMissingDir(t *testing.T) {
	_, err := listMigrationFiles(filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	assert.Error(t, err)
}
