package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// ParsePaymentMethod accepts any casing and surrounding spaces.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	return m, m == PaymentMethodCOD || m == PaymentMethodOnline
}

// OnlineTransfer describes a bank transfer made by the customer.
// Nothing here is verified.
type OnlineTransfer struct {
	BankName       string `json:"bank_name"`
	AccountTitle   string `json:"account_title"`
	AccountNumber  string `json:"account_number"`
	TransactionRef string `json:"transaction_ref,omitempty"`
	ProofRef       string `json:"proof_ref,omitempty"`
}

// Payment is a tagged union: Method selects the variant and Online is set
// exactly when Method is ONLINE. Build values with CashOnDelivery or
// OnlinePayment; decoding normalizes inconsistent input.
type Payment struct {
	Method PaymentMethod
	Online *OnlineTransfer
}

func CashOnDelivery() Payment {
	return Payment{Method: PaymentMethodCOD}
}

func OnlinePayment(t OnlineTransfer) Payment {
	return Payment{Method: PaymentMethodOnline, Online: &t}
}

func (p Payment) IsOnline() bool {
	return p.Method == PaymentMethodOnline && p.Online != nil
}

type paymentJSON struct {
	Method PaymentMethod `json:"method"`
	OnlineTransfer
}

func (p Payment) MarshalJSON() ([]byte, error) {
	switch p.Method {
	case PaymentMethodCOD:
		return json.Marshal(struct {
			Method PaymentMethod `json:"method"`
		}{Method: PaymentMethodCOD})
	case PaymentMethodOnline:
		out := paymentJSON{Method: PaymentMethodOnline}
		if p.Online != nil {
			out.OnlineTransfer = *p.Online
		}
		return json.Marshal(out)
	default:
		return nil, fmt.Errorf("unknown payment method %q", p.Method)
	}
}

// UnmarshalJSON decodes the flat {"method": ..., bank fields...} shape.
// Unknown methods are rejected; bank fields on COD are dropped.
func (p *Payment) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}
	var in paymentJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	method, ok := ParsePaymentMethod(string(in.Method))
	if !ok {
		return fmt.Errorf("unknown payment method %q", in.Method)
	}
	switch method {
	case PaymentMethodCOD:
		*p = CashOnDelivery()
	case PaymentMethodOnline:
		*p = OnlinePayment(in.OnlineTransfer)
	}
	return nil
}
