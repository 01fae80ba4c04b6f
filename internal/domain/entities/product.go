package entities

import (
	"strings"
	"time"
)

// Category is the product family. Coupons may be restricted to one category.
type Category string

const (
	CategoryRing     Category = "RING"
	CategoryGemstone Category = "GEMSTONE"
)

// ParseCategory accepts any casing and surrounding spaces.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

func (c Category) IsValid() bool {
	return c == CategoryRing || c == CategoryGemstone
}

// Plural is the display noun used in customer-facing messages ("rings").
func (c Category) Plural() string {
	switch c {
	case CategoryRing:
		return "rings"
	case CategoryGemstone:
		return "gemstones"
	}
	return "items"
}

// MaxUnitPrice bounds a catalog price in whole rupees.
const MaxUnitPrice int64 = 1_000_000_000_000

// Product is an admin-managed catalog entry.
//
// Storage model (key-value snapshot "products"):
//   - the whole catalog is written as one JSON array
//   - Price is in whole rupees
type Product struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Category    Category  `json:"category" validate:"oneof=RING GEMSTONE"`
	Price       int64     `json:"price" validate:"gte=0"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Featured    bool      `json:"featured,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CartLine builds the cart line for this product.
func (p Product) CartLine() CartLine {
	return CartLine{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Category:  p.Category,
		Image:     p.Image,
		Quantity:  1,
	}
}
