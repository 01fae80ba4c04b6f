package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"gemstore/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultChangesChannel = "storefront:changes"

// redisAPI is the slice of *redis.Client the store uses.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// RedisStore keeps snapshots as plain Redis strings and announces every write
// on a Pub/Sub channel, so all API instances sharing the Redis see changes.
type RedisStore struct {
	client  redisAPI
	channel string
	logger  *zap.Logger
	now     func() time.Time
}

var (
	_ interfaces.IKeyValueStore = (*RedisStore)(nil)
	_ interfaces.IChangeFeed    = (*RedisStore)(nil)
)

func NewRedisStore(client redisAPI, channel string, logger *zap.Logger) *RedisStore {
	if channel == "" {
		channel = DefaultChangesChannel
	}
	return &RedisStore{client: client, channel: channel, logger: logger.Named("redis_store"), now: time.Now}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	s.publish(ctx, interfaces.ChangeEvent{Key: key, At: s.now().UTC()})
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	s.publish(ctx, interfaces.ChangeEvent{Key: key, Removed: true, At: s.now().UTC()})
	return nil
}

// publish failures are logged only; the write itself already succeeded.
func (s *RedisStore) publish(ctx context.Context, ev interfaces.ChangeEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		s.logger.Warn("encode change event", zap.String("key", ev.Key), zap.Error(err))
		return
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		s.logger.Warn("publish change event", zap.String("key", ev.Key), zap.Error(err))
	}
}

// Subscribe listens on the changes channel until ctx is done.
func (s *RedisStore) Subscribe(ctx context.Context) (<-chan interfaces.ChangeEvent, error) {
	pubsub := s.client.Subscribe(ctx, s.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan interfaces.ChangeEvent, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev interfaces.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					s.logger.Warn("discarding malformed change event", zap.String("payload", msg.Payload), zap.Error(err))
					continue
				}
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out, nil
}
