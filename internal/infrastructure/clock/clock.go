package clock

import (
	"gemstore/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

type SystemClock struct{}

var _ interfaces.IClock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator issues UUIDv7 ids: time-ordered with a random tail.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
