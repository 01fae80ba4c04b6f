package kvstore

import (
	"context"
	"gemstore/internal/usecase/interfaces"
	"sync"
	"time"
)

const subscriberBuffer = 16

// Broadcaster fans change events out to in-process subscribers.
// A subscriber whose buffer is full misses the event.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan interfaces.ChangeEvent]struct{}
}

var _ interfaces.IChangeFeed = (*Broadcaster)(nil)

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan interfaces.ChangeEvent]struct{})}
}

func (b *Broadcaster) Publish(ev interfaces.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a channel that is closed once ctx is done.
func (b *Broadcaster) Subscribe(ctx context.Context) (<-chan interfaces.ChangeEvent, error) {
	ch := make(chan interfaces.ChangeEvent, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		close(ch)
		b.mu.Unlock()
	}()
	return ch, nil
}

// Subscribers is the number of live subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// NotifyingStore publishes a ChangeEvent after every successful write to the wrapped store.
type NotifyingStore struct {
	interfaces.IKeyValueStore
	feed *Broadcaster
	now  func() time.Time
}

var (
	_ interfaces.IKeyValueStore = (*NotifyingStore)(nil)
	_ interfaces.IChangeFeed    = (*NotifyingStore)(nil)
)

func NewNotifyingStore(inner interfaces.IKeyValueStore, feed *Broadcaster) *NotifyingStore {
	return &NotifyingStore{IKeyValueStore: inner, feed: feed, now: time.Now}
}

func (s *NotifyingStore) Set(ctx context.Context, key, value string) error {
	if err := s.IKeyValueStore.Set(ctx, key, value); err != nil {
		return err
	}
	s.feed.Publish(interfaces.ChangeEvent{Key: key, At: s.now().UTC()})
	return nil
}

func (s *NotifyingStore) Remove(ctx context.Context, key string) error {
	if err := s.IKeyValueStore.Remove(ctx, key); err != nil {
		return err
	}
	s.feed.Publish(interfaces.ChangeEvent{Key: key, Removed: true, At: s.now().UTC()})
	return nil
}

func (s *NotifyingStore) Subscribe(ctx context.Context) (<-chan interfaces.ChangeEvent, error) {
	return s.feed.Subscribe(ctx)
}
