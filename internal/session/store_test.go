package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fieldops-server/internal/models"
)

func sampleSession() *Session {
	return &Session{
		User:         &models.User{ID: "u1", FirstName: "Amina", Role: "field_officer"},
		AuthToken:    "auth",
		RefreshToken: "refresh",
	}
}

// -- MemoryStore tests --

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(ctx, sampleSession()))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSession(), got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStore_SaveCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := sampleSession()

	require.NoError(t, store.Save(ctx, s))
	s.AuthToken = "changed"

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "auth", got.AuthToken)
}

// -- FileStore tests --

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := NewFileStore(path)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(ctx, sampleSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSession(), got)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	assert.ErrorContains(t, err, "decode session file")
}

// -- RedisStore tests --

func newTestRedisStore(now time.Time) (*RedisStore, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, "default")
	store.now = func() time.Time { return now }
	return store, mock
}

func TestRedisStore_SaveUsesTokenExpiry(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store, mock := newTestRedisStore(now)
	s := sampleSession()
	s.AuthToken = tokenExpiringAt(now.Add(30 * time.Minute))
	data, _ := json.Marshal(s)

	mock.ExpectSet("fieldops:session:default", string(data), 30*time.Minute).SetVal("OK")

	err := store.Save(context.Background(), s)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_SaveWithoutExpiry(t *testing.T) {
	store, mock := newTestRedisStore(time.Now())
	s := sampleSession()
	data, _ := json.Marshal(s)

	mock.ExpectSet("fieldops:session:default", string(data), 0).SetVal("OK")

	err := store.Save(context.Background(), s)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Load(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := newTestRedisStore(time.Now())
		data, _ := json.Marshal(sampleSession())
		mock.ExpectGet("fieldops:session:default").SetVal(string(data))

		got, err := store.Load(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, sampleSession(), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		store, mock := newTestRedisStore(time.Now())
		mock.ExpectGet("fieldops:session:default").RedisNil()

		_, err := store.Load(context.Background())

		assert.ErrorIs(t, err, ErrNoSession)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		store, mock := newTestRedisStore(time.Now())
		mock.ExpectGet("fieldops:session:default").SetErr(errors.New("connection refused"))

		_, err := store.Load(context.Background())

		assert.ErrorContains(t, err, "connection refused")
		assert.NotErrorIs(t, err, redis.Nil)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStore_Clear(t *testing.T) {
	store, mock := newTestRedisStore(time.Now())
	mock.ExpectDel("fieldops:session:default").SetVal(1)

	assert.NoError(t, store.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
