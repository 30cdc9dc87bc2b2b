package redis

import (
	"context"
	"time"

	"github.com/RCOSDP/weko-itemtype/config"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection.
func NewClient(cfg *config.Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
