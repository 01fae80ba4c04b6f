package request

import (
	"gemstore/internal/domain/entities"
	"strings"
)

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       *int64 `json:"price" binding:"required,gte=0,lte=1000000000000"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Stock       int    `json:"stock" binding:"gte=0"`
	Featured    bool   `json:"featured"`
}

func (r ProductRequest) ResolveCategory() (entities.Category, bool) {
	return entities.ParseCategory(r.Category)
}

func (r ProductRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

type StockRequest struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}

type BankAccountRequest struct {
	BankName      string `json:"bank_name"`
	AccountTitle  string `json:"account_title"`
	AccountNumber string `json:"account_number"`
}

type SiteConfigRequest struct {
	StoreName             string             `json:"store_name"`
	ShippingFee           *int64             `json:"shipping_fee" binding:"required,gte=0"`
	FreeShippingThreshold *int64             `json:"free_shipping_threshold" binding:"omitempty,gte=0"`
	Bank                  BankAccountRequest `json:"bank"`
}

func (r SiteConfigRequest) ToEntity() entities.SiteConfig {
	cfg := entities.SiteConfig{
		StoreName:             r.StoreName,
		FreeShippingThreshold: r.FreeShippingThreshold,
		Bank: entities.BankAccount{
			BankName:      r.Bank.BankName,
			AccountTitle:  r.Bank.AccountTitle,
			AccountNumber: r.Bank.AccountNumber,
		},
	}
	if r.ShippingFee != nil {
		cfg.ShippingFee = *r.ShippingFee
	}
	return cfg
}
