package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Opname Index", "index opname_number lookups")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Equal(t, filepath.Join(dir, mf.Version+"_add_opname_index.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, mf.Version+"_add_opname_index.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "index opname_number lookups")

	_, err = os.Stat(mf.DownPath)
	assert.NoError(t, err)
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Add Opname Index":     "add_opname_index",
		"fix--double  spaces":  "fix_double_spaces",
		"Trailing separator- ": "trailing_separator",
		"v2 Schema!":           "v2_schema",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeName(input), "input %q", input)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	names, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = CreateMigration(dir, "first", "")
	require.NoError(t, err)

	names, err = ListMigrations(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Contains(t, names[0], "_first")
}
