package lifecycle

import (
	"encoding/json"
	"testing"
	"time"

	"gemstore/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func placed() entities.Order {
	return entities.Order{
		ID:        "o-1",
		Status:    entities.OrderStatusPlaced,
		CreatedAt: t0,
		Items:     []entities.OrderLine{{ID: "r1", Quantity: 1, UnitPrice: 100}},
		Payment:   entities.CashOnDelivery(),
	}
}

func TestIsActive(t *testing.T) {
	for _, s := range []entities.OrderStatus{
		entities.OrderStatusPlaced, entities.OrderStatusConfirmed, entities.OrderStatusPacked,
		entities.OrderStatusShipped, entities.OrderStatusOutForDelivery,
	} {
		assert.Truef(t, IsActive(s), "%s should be active", s)
	}
	assert.False(t, IsActive(entities.OrderStatusDelivered))
	assert.False(t, IsActive(entities.OrderStatusCancelled))
	assert.False(t, IsActive(entities.OrderStatus("")))
}

func TestAdvance_WalksSequence(t *testing.T) {
	o := placed()
	want := []entities.OrderStatus{
		entities.OrderStatusConfirmed, entities.OrderStatusPacked, entities.OrderStatusShipped,
		entities.OrderStatusOutForDelivery, entities.OrderStatusDelivered,
	}
	for i, st := range want {
		var ok bool
		o, ok = Advance(o, t0.Add(time.Duration(i+1)*time.Hour))
		require.True(t, ok)
		assert.Equal(t, st, o.Status)
		assert.Equal(t, t0.Add(time.Duration(i+1)*time.Hour), o.Timeline[st])
	}
	assert.Equal(t, t0, o.Timeline[entities.OrderStatusPlaced])
	assert.Len(t, o.Timeline, 6)
}

func TestAdvance_TerminalIsNoOp(t *testing.T) {
	delivered := placed()
	delivered.Status = entities.OrderStatusDelivered
	delivered.Timeline = entities.Timeline{entities.OrderStatusDelivered: t0}

	for i := 0; i < 3; i++ {
		got, ok := Advance(delivered, t0.Add(time.Hour))
		assert.False(t, ok)
		assert.Equal(t, delivered, got)
	}

	cancelled := placed()
	cancelled.Status = entities.OrderStatusCancelled
	for i := 0; i < 3; i++ {
		got, ok := Advance(cancelled, t0.Add(time.Hour))
		assert.False(t, ok)
		assert.Equal(t, entities.OrderStatusCancelled, got.Status)
	}
}

func TestAdvance_DoesNotMutateInputOrOverwrite(t *testing.T) {
	o := placed()
	o.Status = entities.OrderStatusConfirmed
	confirmedAt := t0.Add(3 * time.Hour)
	packedEarlier := t0.Add(4 * time.Hour)
	o.Timeline = entities.Timeline{
		entities.OrderStatusPlaced:    t0,
		entities.OrderStatusConfirmed: confirmedAt,
		entities.OrderStatusPacked:    packedEarlier,
	}

	got, ok := Advance(o, t0.Add(10*time.Hour))
	require.True(t, ok)
	assert.Equal(t, entities.OrderStatusPacked, got.Status)
	assert.Equal(t, packedEarlier, got.Timeline[entities.OrderStatusPacked])

	assert.Equal(t, entities.OrderStatusConfirmed, o.Status)
	assert.Len(t, o.Timeline, 3)
	got.Timeline[entities.OrderStatusShipped] = t0
	assert.NotContains(t, o.Timeline, entities.OrderStatusShipped)
}

func TestTransition_KeepsEmptyItemsNonNil(t *testing.T) {
	o := placed()
	o.Items = []entities.OrderLine{}

	next, changed := Advance(o, t0.Add(day))
	require.True(t, changed)
	require.NotNil(t, next.Items)
	assert.Empty(t, next.Items)

	b, err := json.Marshal(next)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"items":[]`)

	cancelled, changed := Cancel(o, t0.Add(day))
	require.True(t, changed)
	assert.NotNil(t, cancelled.Items)
}

func TestTimelineOf_Synthesized(t *testing.T) {
	o := placed()
	o.Status = entities.OrderStatusShipped

	got := TimelineOf(o)
	assert.Equal(t, entities.Timeline{
		entities.OrderStatusPlaced:    t0,
		entities.OrderStatusConfirmed: t0.Add(day),
		entities.OrderStatusPacked:    t0.Add(2 * day),
		entities.OrderStatusShipped:   t0.Add(3 * day),
	}, got)
}

func TestTimelineOf_AfterThreeAdvancesWithoutRecords(t *testing.T) {
	o := placed()
	for i := 0; i < 3; i++ {
		o, _ = Advance(o, t0)
	}
	assert.Equal(t, entities.OrderStatusShipped, o.Status)

	o.Timeline = nil
	got := TimelineOf(o)
	assert.Equal(t, t0.Add(3*day), got[entities.OrderStatusShipped])
	assert.Len(t, got, 4)
}

func TestTimelineOf_ExplicitWins(t *testing.T) {
	o := placed()
	o.Status = entities.OrderStatusPacked
	recorded := t0.Add(90 * time.Minute)
	o.Timeline = entities.Timeline{entities.OrderStatusConfirmed: recorded}

	got := TimelineOf(o)
	assert.Equal(t, entities.Timeline{entities.OrderStatusConfirmed: recorded}, got)

	got[entities.OrderStatusPlaced] = t0
	assert.Len(t, o.Timeline, 1)
}

func TestTimelineOf_CancelledWithoutRecords(t *testing.T) {
	o := placed()
	o.Status = entities.OrderStatusCancelled
	assert.Equal(t, entities.Timeline{entities.OrderStatusPlaced: t0}, TimelineOf(o))
}

func TestCancel(t *testing.T) {
	o := placed()
	cancelled, ok := Cancel(o, t0.Add(time.Hour))
	require.True(t, ok)
	assert.Equal(t, entities.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, t0.Add(time.Hour), cancelled.Timeline[entities.OrderStatusCancelled])
	assert.False(t, IsActive(cancelled.Status))

	again, ok := Cancel(cancelled, t0.Add(2*time.Hour))
	assert.False(t, ok)
	assert.Equal(t, cancelled, again)

	delivered := placed()
	delivered.Status = entities.OrderStatusDelivered
	_, ok = Cancel(delivered, t0)
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	o := placed()
	o, _ = Advance(o, t0.Add(time.Hour))
	steps := Progress(o)

	require.Len(t, steps, 6)
	assert.True(t, steps[0].Reached)
	assert.True(t, steps[1].Reached)
	require.NotNil(t, steps[1].At)
	assert.Equal(t, t0.Add(time.Hour), *steps[1].At)
	assert.False(t, steps[2].Reached)
	assert.Nil(t, steps[2].At)

	o, _ = Cancel(o, t0.Add(2*time.Hour))
	steps = Progress(o)
	require.Len(t, steps, 7)
	assert.Equal(t, entities.OrderStatusCancelled, steps[6].Status)
	assert.True(t, steps[6].Reached)
}
