package interfaces

import "time"

// IClock is the source of "now" for expiry checks and order timestamps.
type IClock interface {
	Now() time.Time
}

// IIDGenerator issues order and product ids. Uniqueness only needs to hold
// for a single low-volume store.
type IIDGenerator interface {
	NewID() string
}
