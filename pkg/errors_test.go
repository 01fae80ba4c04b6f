package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := e.ToHTTPError(); got.Code != "INTERNAL_ERROR" || got.Details != nil {
		t.Fatalf("unexpected http error: %+v", got)
	}

	d := NewDomainErrorSimple("CHECKOUT_INVALID", "Order cannot be placed", http.StatusUnprocessableEntity).
		WithDetails([]string{"missing_name"})
	if d.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", d.HTTPStatus)
	}
	if d.ToHTTPError().Details == nil {
		t.Fatalf("expected details")
	}
	if d.Error() != "CHECKOUT_INVALID: Order cannot be placed" {
		t.Fatalf("unexpected message %q", d.Error())
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("production", "debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewLogger("", "not-a-level"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
