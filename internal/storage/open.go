package storage

import (
	"context"
	"fmt"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/config"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/database"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Open builds the Store selected by cfg.Store.Backend. The returned close
// func releases backend connections and is never nil.
func Open(ctx context.Context, cfg *config.Config) (*Store, func(), error) {
	prefix := cfg.Store.KeyPrefix
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, func() {}, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr(), err)
		}
		logger.Infof("using Redis store at %s", cfg.Redis.Addr())
		return New(NewRedisKV(client), prefix), func() { _ = client.Close() }, nil
	case config.BackendMongo:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			return nil, func() {}, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		logger.Infof("using MongoDB store %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		return New(NewMongoKV(col), prefix), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		logger.Infof("using in-memory store")
		return New(NewMemoryKV(), prefix), func() {}, nil
	}
}
