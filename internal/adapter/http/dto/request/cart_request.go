package request

import (
	"strings"

	"gemstore/internal/domain/entities"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1,lte=999"`
}

func (r AddCartItemRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

// ResolveQuantity defaults to a single unit and never exceeds entities.MaxLineQuantity.
func (r AddCartItemRequest) ResolveQuantity() int {
	if r.Quantity < 1 {
		return 1
	}
	return min(r.Quantity, entities.MaxLineQuantity)
}

// UpdateCartItemRequest sets the line quantity; values below 1 are clamped to 1.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,lte=999"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}
