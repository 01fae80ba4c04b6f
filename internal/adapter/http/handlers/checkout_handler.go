package handlers

import (
	request "gemstore/internal/adapter/http/dto/request"
	response "gemstore/internal/adapter/http/dto/response"
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	usecase   usecase.ICheckoutUseCase
	formatter money.Formatter
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, formatter money.Formatter) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, formatter: formatter}
}

// @Summary      Price the cart
// @Tags         checkout
// @Produce      json
// @Success      200 {object} response.QuoteResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /checkout/quote [get]
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.Quote(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, h.formatter))
}

// ValidateCheckout answers "can this order be placed?" without placing it.
//
// @Summary      Check whether the order can be placed
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload body request.PlaceOrderRequest true "Order"
// @Success      200 {object} map[string]any
// @Failure      400 {object} pkg.HTTPError
// @Router       /checkout/validate [post]
func (h *CheckoutHandler) ValidateCheckout(c *gin.Context) {
	in, ok := bindPlaceOrder(c)
	if !ok {
		return
	}

	problems, err := h.usecase.Validate(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	if problems == nil {
		problems = []usecase.Problem{}
	}
	c.JSON(http.StatusOK, gin.H{"can_place": len(problems) == 0, "problems": problems})
}

// PlaceOrder responds 422 with the problem list when the order cannot be placed.
//
// @Summary      Place order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload body request.PlaceOrderRequest true "Order"
// @Success      201 {object} response.OrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	in, ok := bindPlaceOrder(c)
	if !ok {
		return
	}

	order, err := h.usecase.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order, h.formatter))
}

func bindPlaceOrder(c *gin.Context) (usecase.PlaceOrderInput, bool) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return usecase.PlaceOrderInput{}, false
	}
	return usecase.PlaceOrderInput{
		Customer: payload.ResolveCustomer(),
		Payment:  payload.ResolvePayment(),
	}, true
}
