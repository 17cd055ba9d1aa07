package utils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_Lifecycle(t *testing.T) {
	store, err := NewCredentialStore(filepath.Join(t.TempDir(), "creds", "token.json"))
	require.NoError(t, err)

	// nothing saved yet
	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)

	want := &ServiceCredentials{
		Token:     "service.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Token, got.Token)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Clear())
	got, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestNewCredentialStore_RequiresPath(t *testing.T) {
	_, err := NewCredentialStore("")
	assert.Error(t, err)
}
