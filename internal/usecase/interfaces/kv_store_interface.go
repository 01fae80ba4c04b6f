package interfaces

import (
	"context"
	"time"
)

// IKeyValueStore is the generic string-keyed store holding whole JSON snapshots.
//
// Get reports found=false for a missing key; err is reserved for backend failures.
// Writes replace the whole value, so the last writer wins.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ChangeEvent tells observers that a snapshot key was rewritten or removed.
type ChangeEvent struct {
	Key     string    `json:"key"`
	Removed bool      `json:"removed,omitempty"`
	At      time.Time `json:"at"`
}

// IChangeFeed delivers ChangeEvents until ctx is done. Delivery is best-effort:
// slow subscribers may miss events and should re-read snapshots anyway.
type IChangeFeed interface {
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}
