package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh911911/Furniture-B/pkg/clients"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

func newSessionRepoForTest(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Client.Close() })

	return NewSessionRepo(client), mr
}

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get roundtrip", func(t *testing.T) {
		repo, _ := newSessionRepoForTest(t)

		require.NoError(t, repo.Set(ctx, "sid-1", "adm-1", time.Hour))

		adminID, err := repo.Get(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "adm-1", adminID)
	})

	t.Run("missing session returns sentinel", func(t *testing.T) {
		repo, _ := newSessionRepoForTest(t)

		_, err := repo.Get(ctx, "ghost")
		require.ErrorIs(t, err, e.ErrSessionNotFound)
	})

	t.Run("expired session is gone", func(t *testing.T) {
		repo, mr := newSessionRepoForTest(t)

		require.NoError(t, repo.Set(ctx, "sid-1", "adm-1", time.Minute))
		mr.FastForward(2 * time.Minute)

		_, err := repo.Get(ctx, "sid-1")
		require.ErrorIs(t, err, e.ErrSessionNotFound)
	})

	t.Run("delete removes session, repeat delete is a no-op", func(t *testing.T) {
		repo, _ := newSessionRepoForTest(t)

		require.NoError(t, repo.Set(ctx, "sid-1", "adm-1", time.Hour))
		require.NoError(t, repo.Delete(ctx, "sid-1"))

		_, err := repo.Get(ctx, "sid-1")
		require.ErrorIs(t, err, e.ErrSessionNotFound)

		assert.NoError(t, repo.Delete(ctx, "sid-1"))
	})

	t.Run("sessions are namespaced with a key prefix", func(t *testing.T) {
		repo, mr := newSessionRepoForTest(t)

		require.NoError(t, repo.Set(ctx, "sid-1", "adm-1", time.Hour))
		assert.True(t, mr.Exists("session:sid-1"))
	})
}
