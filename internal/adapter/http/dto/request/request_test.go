package request

import (
	"math"
	"testing"

	"gemstore/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func TestAddCartItemRequest(t *testing.T) {
	r := AddCartItemRequest{ProductID: "  r1 "}
	if r.ResolveProductID() != "r1" {
		t.Fatalf("expected trimmed id, got %q", r.ResolveProductID())
	}
	if r.ResolveQuantity() != 1 {
		t.Fatalf("expected default quantity 1, got %d", r.ResolveQuantity())
	}
	r.Quantity = 3
	if r.ResolveQuantity() != 3 {
		t.Fatalf("expected quantity 3, got %d", r.ResolveQuantity())
	}
	r.Quantity = math.MaxInt
	if r.ResolveQuantity() != entities.MaxLineQuantity {
		t.Fatalf("expected quantity capped at %d, got %d", entities.MaxLineQuantity, r.ResolveQuantity())
	}
}

func TestCartRequests_RejectOversizedQuantity(t *testing.T) {
	if err := binding.Validator.ValidateStruct(AddCartItemRequest{ProductID: "r1", Quantity: math.MaxInt}); err == nil {
		t.Fatalf("expected add request with huge quantity to fail validation")
	}
	if err := binding.Validator.ValidateStruct(AddCartItemRequest{ProductID: "r1", Quantity: entities.MaxLineQuantity}); err != nil {
		t.Fatalf("expected max quantity to pass, got %v", err)
	}
	huge := math.MaxInt
	if err := binding.Validator.ValidateStruct(UpdateCartItemRequest{Quantity: &huge}); err == nil {
		t.Fatalf("expected update request with huge quantity to fail validation")
	}
	zero := 0
	if err := binding.Validator.ValidateStruct(UpdateCartItemRequest{Quantity: &zero}); err != nil {
		t.Fatalf("expected zero quantity to pass and be clamped later, got %v", err)
	}
}

func TestPlaceOrderRequest_ResolvePayment(t *testing.T) {
	t.Run("cod drops bank fields", func(t *testing.T) {
		p := PlaceOrderRequest{Payment: PaymentRequest{Method: "cod", AccountNumber: "1"}}.ResolvePayment()
		if p.Method != entities.PaymentMethodCOD || p.Online != nil {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("online keeps references", func(t *testing.T) {
		p := PlaceOrderRequest{Payment: PaymentRequest{Method: " Online ", TransactionRef: " TX1 ", ProofRef: "receipt.png"}}.ResolvePayment()
		if !p.IsOnline() || p.Online.TransactionRef != "TX1" || p.Online.ProofRef != "receipt.png" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		p := PlaceOrderRequest{Payment: PaymentRequest{Method: "crypto"}}.ResolvePayment()
		if p.Method != "" {
			t.Fatalf("expected zero payment, got %+v", p)
		}
	})
}

func TestPlaceOrderRequest_ResolveCustomer(t *testing.T) {
	c := PlaceOrderRequest{Customer: CustomerRequest{Name: " Sana ", Phone: " 0321 ", City: "Karachi "}}.ResolveCustomer()
	if c.Name != "Sana" || c.Phone != "0321" || c.City != "Karachi" {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestSiteConfigRequest_ToEntity(t *testing.T) {
	fee := int64(300)
	cfg := SiteConfigRequest{StoreName: "Lustre", ShippingFee: &fee, Bank: BankAccountRequest{AccountNumber: "9"}}.ToEntity()
	if cfg.ShippingFee != 300 || cfg.StoreName != "Lustre" || cfg.Bank.AccountNumber != "9" || cfg.FreeShippingThreshold != nil {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestProductRequest_ResolveCategory(t *testing.T) {
	if c, ok := (ProductRequest{Category: "ring"}).ResolveCategory(); !ok || c != entities.CategoryRing {
		t.Fatalf("expected RING, got %q %v", c, ok)
	}
	if _, ok := (ProductRequest{Category: "watch"}).ResolveCategory(); ok {
		t.Fatalf("expected unknown category to fail")
	}
}
