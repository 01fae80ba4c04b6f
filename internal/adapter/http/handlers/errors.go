package handlers

import (
	"errors"
	"gemstore/internal/usecase"
	"gemstore/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidCategory = pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Category must be RING or GEMSTONE", http.StatusBadRequest)
	errCheckout        = pkg.NewDomainErrorSimple("CHECKOUT_REJECTED", "Order cannot be placed yet", http.StatusUnprocessableEntity)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapStoreError covers every usecase sentinel; anything else is a backend failure.
func mapStoreError(err error) *pkg.AppError {
	var checkoutErr *usecase.CheckoutError
	switch {
	case errors.As(err, &checkoutErr):
		return errCheckout.WithDetails(checkoutErr.Problems)
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSiteConfig):
		return pkg.NewDomainErrorSimple("INVALID_SITE_CONFIG", "Invalid site configuration", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductOutOfStock):
		return pkg.NewDomainErrorSimple("PRODUCT_OUT_OF_STOCK", "Product is out of stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Requested quantity exceeds available stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item is not in the cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
