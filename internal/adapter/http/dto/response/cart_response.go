package response

import (
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"
)

type CartLineResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Category  string `json:"category"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

type CartResponse struct {
	Items          []CartLineResponse `json:"items"`
	TotalQuantity  int                `json:"total_quantity"`
	TotalPrice     int64              `json:"total_price"`
	FormattedTotal string             `json:"formatted_total"`
}

func FromCart(c entities.Cart, f money.Formatter) CartResponse {
	items := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, CartLineResponse{
			ID:        l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Category:  string(l.Category),
			Image:     l.Image,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		})
	}
	return CartResponse{
		Items:          items,
		TotalQuantity:  c.TotalQuantity(),
		TotalPrice:     c.TotalPrice(),
		FormattedTotal: f.Format(c.TotalPrice()),
	}
}
