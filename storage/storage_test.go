package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

func exerciseBackend(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	require.NoError(t, s.Remove(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Remove(ctx, "k"), "removing an absent key is not an error")

	in := []item{{ID: "1", Qty: 2}, {ID: "7", Qty: 1}}
	require.NoError(t, SaveJSON(ctx, s, KeyCartItems, in))
	var out []item
	require.NoError(t, LoadJSON(ctx, s, KeyCartItems, &out))
	assert.Equal(t, in, out)

	require.NoError(t, s.Set(ctx, KeyCartItems, []byte("{not json")))
	assert.ErrorIs(t, LoadJSON(ctx, s, KeyCartItems, &out), ErrCorrupt)
}

func TestMemoryStorage(t *testing.T) {
	exerciseBackend(t, NewMemoryStorage())
}

func TestSQLiteStorage(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseBackend(t, s)
}

func TestNamespaceIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStorage()
	a := Namespace(base, SessionPrefix("a"))
	b := Namespace(base, SessionPrefix("b"))

	require.NoError(t, a.Set(ctx, KeyAuthUser, []byte(`{"id":"1"}`)))
	_, err := b.Get(ctx, KeyAuthUser)
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := base.Get(ctx, "session:a:"+KeyAuthUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(raw))
	assert.Equal(t, []string{"session:a:auth_user"}, base.Keys())
}

func TestMemoryStorageCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v))
	v[0] = 'z'
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestOrderSnapshotKey(t *testing.T) {
	assert.Equal(t, "order_YLS1700000000000", OrderSnapshotKey("YLS1700000000000"))
}
