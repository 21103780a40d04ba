package service

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/finsight-app/finsight/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "finsight", "session.json"))

	session := &domain.Session{
		Token: "tok-1",
		User:  domain.User{UserID: "u-1", Name: "Ravi", Email: "ravi@example.com"},
	}
	require.NoError(t, store.Save(session))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session, loaded)
}

func TestSessionStoreLoadMissing(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "nope", "session.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreLoadEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"","user":{}}`), 0o600))

	loaded, err := NewFileSessionStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileSessionStore(path).Load()
	require.Error(t, err)
	assert.True(t, domain.HasErrorCode(err, domain.ErrCodeConfig))
}

func TestSessionStoreClear(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(&domain.Session{Token: "tok-1"}))

	require.NoError(t, store.Clear())
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// clearing again is a no-op
	require.NoError(t, store.Clear())
}

func TestSessionStoreFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path)
	require.NoError(t, store.Save(&domain.Session{Token: "tok-1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionStoreOverwrite(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(&domain.Session{Token: "old"}))
	require.NoError(t, store.Save(&domain.Session{Token: "new"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "new", loaded.Token)
}
