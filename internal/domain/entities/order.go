package entities

import (
	"strings"
	"time"
)

// OrderStatus is the fulfillment stage of an order.
//
// Stages advance strictly along OrderSequence. CANCELLED sits outside the
// sequence and, like DELIVERED, is terminal.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPacked         OrderStatus = "PACKED"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

var orderSequence = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusConfirmed,
	OrderStatusPacked,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// OrderSequence returns the linear fulfillment stages in order.
func OrderSequence() []OrderStatus {
	out := make([]OrderStatus, len(orderSequence))
	copy(out, orderSequence)
	return out
}

// Index is the position in OrderSequence, or -1 for CANCELLED and unknown values.
func (s OrderStatus) Index() int {
	for i, st := range orderSequence {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) IsValid() bool {
	return s == OrderStatusCancelled || s.Index() >= 0
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Label is the human-readable stage name ("Out for delivery").
func (s OrderStatus) Label() string {
	words := strings.Split(strings.ToLower(string(s)), "_")
	label := strings.Join(words, " ")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func (s OrderStatus) String() string {
	return string(s)
}

// Timeline maps a stage to the moment the order reached it.
type Timeline map[OrderStatus]time.Time

// Clone returns an independent copy. A nil timeline stays nil.
func (t Timeline) Clone() Timeline {
	if t == nil {
		return nil
	}
	out := make(Timeline, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Customer holds the delivery contact. Checkout requires Name and Phone; stored
// orders keep whatever contact they were placed with.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// OrderLine is a copy of a cart line taken when the order was placed.
// Catalog changes after placement never touch it.
type OrderLine struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	Image     string `json:"image,omitempty"`
}

func (l OrderLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Order is created once at checkout and is never deleted.
//
// Storage model (key-value snapshot "orders"):
//   - all orders are written as one JSON array
//   - Timeline is omitted for orders that predate recorded transitions
type Order struct {
	ID          string      `json:"id" validate:"required"`
	Status      OrderStatus `json:"status" validate:"required,order_status"`
	CreatedAt   time.Time   `json:"created_at" validate:"required"`
	Customer    Customer    `json:"customer" validate:"-"`
	Items       []OrderLine `json:"items" validate:"dive"`
	CouponCode  string      `json:"coupon_code,omitempty"`
	Subtotal    int64       `json:"subtotal"`
	Discount    int64       `json:"discount"`
	ShippingFee int64       `json:"shipping_fee" validate:"gte=0"`
	Total       int64       `json:"total"`
	Payment     Payment     `json:"payment"`
	Timeline    Timeline    `json:"timeline,omitempty"`
}

// OrderLinesFromCart snapshots cart lines into order lines.
func OrderLinesFromCart(c Cart) []OrderLine {
	lines := make([]OrderLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, OrderLine{
			ID:        l.ID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Image:     l.Image,
		})
	}
	return lines
}

// ItemsSubtotal sums the order lines.
func (o Order) ItemsSubtotal() int64 {
	var total int64
	for _, l := range o.Items {
		total += l.LineTotal()
	}
	return total
}

// OrderTotal is the discounted subtotal (never negative) plus shipping.
func OrderTotal(subtotal, discount, shippingFee int64) int64 {
	net := subtotal - discount
	if net < 0 {
		net = 0
	}
	return net + shippingFee
}
