package routes

import (
	"context"
	"fmt"

	"gemstore/internal/adapter/persistence/kvstore"
	"gemstore/internal/infrastructure/cache"
	"gemstore/internal/infrastructure/config"
	"gemstore/internal/infrastructure/database"
	"gemstore/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Store is a key-value backend that also announces its writes.
type Store interface {
	interfaces.IKeyValueStore
	interfaces.IChangeFeed
}

// openStore builds the backend selected by STORE_BACKEND.
// Memory and DynamoDB notify only subscribers of this process; Redis fans
// changes out to every instance through Pub/Sub.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureKVTable(ctx, ddb, cfg.DynamoDB.Table); err != nil {
			return nil, fmt.Errorf("ensure table %s: %w", cfg.DynamoDB.Table, err)
		}
		return kvstore.NewNotifyingStore(kvstore.NewDynamoStore(ddb, cfg.DynamoDB.Table), kvstore.NewBroadcaster()), nil
	case config.BackendRedis:
		client, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(client, cfg.Redis.ChangesChannel, logger), nil
	default:
		return NewMemoryStore(), nil
	}
}

// NewMemoryStore is the in-process backend; state is lost on restart.
func NewMemoryStore() Store {
	return kvstore.NewNotifyingStore(kvstore.NewMemoryStore(), kvstore.NewBroadcaster())
}
