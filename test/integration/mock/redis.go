package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	miniRedis   *miniredis.Miniredis
	redisClient *redis.Client
)

// NewRedis starts one miniredis server per test run and returns a client bound to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		miniRedis = server
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})

	return redisClient
}

// ClearRedis drops every cached key between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}

// CachedKeys lists keys currently stored under prefix.
func CachedKeys(prefix string) []string {
	if miniRedis == nil {
		return nil
	}
	var keys []string
	for _, key := range miniRedis.Keys() {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}
