package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/devodyssey/domain"
)

type preferenceStorage struct {
	client *redis.Client
}

var _ domain.PreferenceStorage = (*preferenceStorage)(nil)

// NewPreferenceStorage is the durable key-value port for UI preferences.
func NewPreferenceStorage(client *redis.Client) *preferenceStorage {
	return &preferenceStorage{
		client: client,
	}
}

func (s *preferenceStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set keeps the value until overwritten.
func (s *preferenceStorage) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
