package siteconf

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "settings.db")
	s, err := OpenStore(path)
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestOpenStore(t *testing.T) {
	s, _ := setupTestStore(t)
	require.NotNil(t, s)
	require.NotNil(t, s.db)
}

func TestStoreSaveAndLoad(t *testing.T) {
	s, _ := setupTestStore(t)

	for _, p := range Profiles() {
		c, err := Load(p)
		require.NoError(t, err)
		require.NoError(t, s.Save(p, c))

		got, err := s.Load(p)
		require.NoError(t, err)
		if diff := cmp.Diff(c, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s snapshot differs (-want +got):\n%s", p, diff)
		}
	}

	profiles, err := s.Profiles()
	require.NoError(t, err)
	assert.Equal(t, []Profile{Development, Production}, profiles)
}

func TestStoreSaveReplaces(t *testing.T) {
	s, _ := setupTestStore(t)

	prod, err := Load(Production)
	require.NoError(t, err)
	require.NoError(t, s.Save(Development, prod))

	// Saving the development record over it drops relative_urls and brings
	// back the tracking id.
	require.NoError(t, s.Save(Development, Default()))

	got, err := s.Load(Development)
	require.NoError(t, err)
	assert.Nil(t, got.RelativeURLs)
	assert.Equal(t, "UA-86665642-1", got.GoogleAnalytics)
	assert.Equal(t, "", got.SiteURL)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM settings WHERE profile = ?`, "development").Scan(&n))
	assert.Equal(t, len(Default().Settings()), n)
}

func TestStoreKeepsKeyOrder(t *testing.T) {
	s, _ := setupTestStore(t)
	require.NoError(t, s.Save(Development, Default()))

	rows, err := s.db.Query(`SELECT key FROM settings WHERE profile = ? ORDER BY position`, "development")
	require.NoError(t, err)
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		keys = append(keys, k)
	}
	require.NoError(t, rows.Err())

	var want []string
	for _, st := range Default().Settings() {
		want = append(want, st.Key)
	}
	assert.Equal(t, want, keys)
}

func TestStoreFeedsStoredAsNull(t *testing.T) {
	s, _ := setupTestStore(t)
	require.NoError(t, s.Save(Development, Default()))

	var value string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM settings WHERE profile = ? AND key = ?`, "development", KeyFeedAllAtom).Scan(&value))
	assert.Equal(t, "null", value)
}

func TestStoreLoadMissingProfile(t *testing.T) {
	s, _ := setupTestStore(t)
	_, err := s.Load(Production)
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.ErrorContains(t, err, "production")
}

func TestImportSQLiteMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typo", "settings.db")

	_, err := ImportSQLite(path, Development)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, path)

	_, statErr := os.Stat(filepath.Join(dir, "typo"))
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "import must not create the directory")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImportSQLiteMissingProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	require.NoError(t, ExportSQLite(path, Development, Default()))

	_, err := ImportSQLite(path, Production)
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.ErrorContains(t, err, "production")
	assert.ErrorContains(t, err, path)
}

func TestExportImportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	prod, err := Load(Production)
	require.NoError(t, err)

	require.NoError(t, ExportSQLite(path, Production, prod))
	got, err := ImportSQLite(path, Production)
	require.NoError(t, err)
	assert.Empty(t, got.GoogleAnalytics)
	require.NotNil(t, got.RelativeURLs)
	assert.False(t, *got.RelativeURLs)
	assert.Equal(t, prod.StaticPaths, got.StaticPaths)
}
