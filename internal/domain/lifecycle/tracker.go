// Package lifecycle moves orders through their fulfillment stages and
// derives the per-stage timeline shown to customers and admins.
package lifecycle

import (
	"time"

	"gemstore/internal/domain/entities"
)

const synthesizedStep = 24 * time.Hour

// IsActive is true while an order is still in flight.
func IsActive(status entities.OrderStatus) bool {
	switch status {
	case entities.OrderStatusPlaced,
		entities.OrderStatusConfirmed,
		entities.OrderStatusPacked,
		entities.OrderStatusShipped,
		entities.OrderStatusOutForDelivery:
		return true
	default:
		return false
	}
}

// Next returns the stage after s, or false when s is terminal or unknown.
func Next(s entities.OrderStatus) (entities.OrderStatus, bool) {
	if s.IsTerminal() {
		return s, false
	}
	i := s.Index()
	seq := entities.OrderSequence()
	if i < 0 || i+1 >= len(seq) {
		return s, false
	}
	return seq[i+1], true
}

// Advance moves the order one stage forward and stamps the entered stage with now.
// DELIVERED and CANCELLED orders come back unchanged with false.
//
// The input order is never mutated. Existing timeline entries are kept as-is;
// an order without a timeline gets its PLACED entry from CreatedAt.
func Advance(o entities.Order, now time.Time) (entities.Order, bool) {
	next, ok := Next(o.Status)
	if !ok {
		return o, false
	}
	return transition(o, next, now), true
}

// Cancel moves any non-terminal order to CANCELLED.
func Cancel(o entities.Order, now time.Time) (entities.Order, bool) {
	if o.Status.IsTerminal() || !o.Status.IsValid() {
		return o, false
	}
	return transition(o, entities.OrderStatusCancelled, now), true
}

func transition(o entities.Order, to entities.OrderStatus, now time.Time) entities.Order {
	timeline := o.Timeline.Clone()
	if timeline == nil {
		timeline = entities.Timeline{}
	}
	if _, ok := timeline[entities.OrderStatusPlaced]; !ok && !o.CreatedAt.IsZero() {
		timeline[entities.OrderStatusPlaced] = o.CreatedAt
	}
	if _, ok := timeline[to]; !ok {
		timeline[to] = now
	}

	o.Status = to
	o.Timeline = timeline
	items := make([]entities.OrderLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// TimelineOf returns the recorded timeline when the order has one.
// Otherwise it synthesizes createdAt + i days for every stage from PLACED
// through the current one. A cancelled order without records only shows PLACED.
func TimelineOf(o entities.Order) entities.Timeline {
	if len(o.Timeline) > 0 {
		return o.Timeline.Clone()
	}

	last := o.Status.Index()
	if o.Status == entities.OrderStatusCancelled {
		last = 0
	}

	out := entities.Timeline{}
	for i, st := range entities.OrderSequence() {
		if i > last {
			break
		}
		out[st] = o.CreatedAt.Add(time.Duration(i) * synthesizedStep)
	}
	return out
}

// Step is one row of a rendered progress tracker.
type Step struct {
	Status  entities.OrderStatus
	Label   string
	Reached bool
	At      *time.Time
}

// Progress lays the timeline over the fixed stage sequence, followed by a
// CANCELLED row when the order was cancelled.
func Progress(o entities.Order) []Step {
	timeline := TimelineOf(o)
	current := o.Status.Index()

	steps := make([]Step, 0, len(entities.OrderSequence())+1)
	for i, st := range entities.OrderSequence() {
		step := Step{Status: st, Label: st.Label()}
		if at, ok := timeline[st]; ok {
			step.At = &at
			step.Reached = true
		} else if current >= 0 && i <= current {
			step.Reached = true
		}
		steps = append(steps, step)
	}
	if o.Status == entities.OrderStatusCancelled {
		step := Step{Status: entities.OrderStatusCancelled, Label: entities.OrderStatusCancelled.Label(), Reached: true}
		if at, ok := timeline[entities.OrderStatusCancelled]; ok {
			step.At = &at
		}
		steps = append(steps, step)
	}
	return steps
}
