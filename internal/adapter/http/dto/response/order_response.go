package response

import (
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/lifecycle"
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"
	"time"
)

type OrderLineResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image,omitempty"`
	LineTotal int64  `json:"line_total"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

type PaymentResponse struct {
	Method         string `json:"method"`
	BankName       string `json:"bank_name,omitempty"`
	AccountTitle   string `json:"account_title,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
	TransactionRef string `json:"transaction_ref,omitempty"`
	ProofRef       string `json:"proof_ref,omitempty"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	Status         string              `json:"status"`
	StatusLabel    string              `json:"status_label"`
	Active         bool                `json:"active"`
	CreatedAt      time.Time           `json:"created_at"`
	Customer       CustomerResponse    `json:"customer"`
	Items          []OrderLineResponse `json:"items"`
	CouponCode     string              `json:"coupon_code,omitempty"`
	Subtotal       int64               `json:"subtotal"`
	Discount       int64               `json:"discount"`
	ShippingFee    int64               `json:"shipping_fee"`
	Total          int64               `json:"total"`
	FormattedTotal string              `json:"formatted_total"`
	Payment        PaymentResponse     `json:"payment"`
}

func FromOrder(o entities.Order, f money.Formatter) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, OrderLineResponse{
			ID:        l.ID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Image:     l.Image,
			LineTotal: l.LineTotal(),
		})
	}

	payment := PaymentResponse{Method: string(o.Payment.Method)}
	if o.Payment.IsOnline() {
		payment.BankName = o.Payment.Online.BankName
		payment.AccountTitle = o.Payment.Online.AccountTitle
		payment.AccountNumber = o.Payment.Online.AccountNumber
		payment.TransactionRef = o.Payment.Online.TransactionRef
		payment.ProofRef = o.Payment.Online.ProofRef
	}

	return OrderResponse{
		ID:          o.ID,
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		Active:      lifecycle.IsActive(o.Status),
		CreatedAt:   o.CreatedAt,
		Customer: CustomerResponse{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
			City:    o.Customer.City,
		},
		Items:          items,
		CouponCode:     o.CouponCode,
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		ShippingFee:    o.ShippingFee,
		Total:          o.Total,
		FormattedTotal: f.Format(o.Total),
		Payment:        payment,
	}
}

func FromOrders(orders []entities.Order, f money.Formatter) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, f))
	}
	return out
}

// OrderTransitionResponse tells the admin panel whether advance/cancel did anything.
type OrderTransitionResponse struct {
	Changed bool          `json:"changed"`
	Order   OrderResponse `json:"order"`
}

type StepResponse struct {
	Status  string     `json:"status"`
	Label   string     `json:"label"`
	Reached bool       `json:"reached"`
	At      *time.Time `json:"at,omitempty"`
}

type TrackingResponse struct {
	OrderID  string               `json:"order_id"`
	Status   string               `json:"status"`
	Active   bool                 `json:"active"`
	Timeline map[string]time.Time `json:"timeline"`
	Steps    []StepResponse       `json:"steps"`
}

func FromTracking(tr usecase.OrderTracking) TrackingResponse {
	timeline := make(map[string]time.Time, len(tr.Timeline))
	for st, at := range tr.Timeline {
		timeline[string(st)] = at
	}
	return TrackingResponse{
		OrderID:  tr.Order.ID,
		Status:   string(tr.Order.Status),
		Active:   tr.Active,
		Timeline: timeline,
		Steps:    fromSteps(tr.Steps),
	}
}

func fromSteps(steps []lifecycle.Step) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepResponse{Status: string(s.Status), Label: s.Label, Reached: s.Reached, At: s.At})
	}
	return out
}

type StatsResponse struct {
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	Delivered        int            `json:"delivered"`
	Cancelled        int            `json:"cancelled"`
	ByStatus         map[string]int `json:"by_status"`
	Revenue          int64          `json:"revenue"`
	FormattedRevenue string         `json:"formatted_revenue"`
}

func FromStats(s usecase.OrderStats, f money.Formatter) StatsResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for st, n := range s.ByStatus {
		byStatus[string(st)] = n
	}
	return StatsResponse{
		Total:            s.Total,
		Active:           s.Active,
		Delivered:        s.Delivered,
		Cancelled:        s.Cancelled,
		ByStatus:         byStatus,
		Revenue:          s.Revenue,
		FormattedRevenue: f.Format(s.Revenue),
	}
}
