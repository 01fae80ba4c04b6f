package response

import (
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"
	"time"
)

type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Price          int64     `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	Image          string    `json:"image,omitempty"`
	Description    string    `json:"description,omitempty"`
	Stock          int       `json:"stock"`
	InStock        bool      `json:"in_stock"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product, f money.Formatter) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		Price:          p.Price,
		FormattedPrice: f.Format(p.Price),
		Image:          p.Image,
		Description:    p.Description,
		Stock:          p.Stock,
		InStock:        p.InStock(),
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product, f money.Formatter) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p, f))
	}
	return out
}

type BankAccountResponse struct {
	BankName      string `json:"bank_name"`
	AccountTitle  string `json:"account_title"`
	AccountNumber string `json:"account_number"`
}

type SiteConfigResponse struct {
	StoreName             string              `json:"store_name"`
	ShippingFee           int64               `json:"shipping_fee"`
	FreeShippingThreshold *int64              `json:"free_shipping_threshold,omitempty"`
	Bank                  BankAccountResponse `json:"bank"`
}

func FromSiteConfig(c entities.SiteConfig) SiteConfigResponse {
	return SiteConfigResponse{
		StoreName:             c.StoreName,
		ShippingFee:           c.ShippingFee,
		FreeShippingThreshold: c.FreeShippingThreshold,
		Bank: BankAccountResponse{
			BankName:      c.Bank.BankName,
			AccountTitle:  c.Bank.AccountTitle,
			AccountNumber: c.Bank.AccountNumber,
		},
	}
}
