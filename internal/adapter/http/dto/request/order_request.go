package request

import (
	"gemstore/internal/domain/entities"
	"strings"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// PaymentRequest is the flat payment shape. Bank fields are only read for ONLINE.
type PaymentRequest struct {
	Method         string `json:"method"`
	BankName       string `json:"bank_name"`
	AccountTitle   string `json:"account_title"`
	AccountNumber  string `json:"account_number"`
	TransactionRef string `json:"transaction_ref"`
	ProofRef       string `json:"proof_ref"`
}

// PlaceOrderRequest carries no binding rules: missing fields are reported as
// checkout problems instead of a generic bad request.
type PlaceOrderRequest struct {
	Customer CustomerRequest `json:"customer"`
	Payment  PaymentRequest  `json:"payment"`
}

func (r PlaceOrderRequest) ResolveCustomer() entities.Customer {
	return entities.Customer{
		Name:    strings.TrimSpace(r.Customer.Name),
		Phone:   strings.TrimSpace(r.Customer.Phone),
		Address: strings.TrimSpace(r.Customer.Address),
		City:    strings.TrimSpace(r.Customer.City),
	}
}

// ResolvePayment returns the zero Payment for a missing or unknown method.
func (r PlaceOrderRequest) ResolvePayment() entities.Payment {
	method, ok := entities.ParsePaymentMethod(r.Payment.Method)
	if !ok {
		return entities.Payment{}
	}
	if method == entities.PaymentMethodCOD {
		return entities.CashOnDelivery()
	}
	return entities.OnlinePayment(entities.OnlineTransfer{
		BankName:       strings.TrimSpace(r.Payment.BankName),
		AccountTitle:   strings.TrimSpace(r.Payment.AccountTitle),
		AccountNumber:  strings.TrimSpace(r.Payment.AccountNumber),
		TransactionRef: strings.TrimSpace(r.Payment.TransactionRef),
		ProofRef:       strings.TrimSpace(r.Payment.ProofRef),
	})
}
