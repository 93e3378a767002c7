package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/priyansh911911/Furniture-B/pkg/clients"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

const sessionKeyPrefix = "session:"

// SessionRepo хранит админские сессии в Redis с TTL.
type SessionRepo struct {
	client *clients.RedisClient
}

func NewSessionRepo(client *clients.RedisClient) *SessionRepo {
	return &SessionRepo{client: client}
}

// Set сохраняет сессию. Истечение TTL удаляет ключ без участия приложения.
func (r *SessionRepo) Set(ctx context.Context, sid string, adminID string, ttl time.Duration) error {
	if err := r.client.Client.Set(ctx, sessionKeyPrefix+sid, adminID, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Get возвращает идентификатор администратора по сессии.
func (r *SessionRepo) Get(ctx context.Context, sid string) (string, error) {
	adminID, err := r.client.Client.Get(ctx, sessionKeyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return adminID, nil
}

// Delete снимает сессию. Удаление отсутствующего ключа не является ошибкой.
func (r *SessionRepo) Delete(ctx context.Context, sid string) error {
	if err := r.client.Client.Del(ctx, sessionKeyPrefix+sid).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
