package handlers

import (
	request "gemstore/internal/adapter/http/dto/request"
	response "gemstore/internal/adapter/http/dto/response"
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the shopper's cart.

type CartHandler struct {
	usecase   usecase.ICartUseCase
	formatter money.Formatter
}

func NewCartHandler(uc usecase.ICartUseCase, formatter money.Formatter) *CartHandler {
	return &CartHandler{usecase: uc, formatter: formatter}
}

// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Success      200 {object} response.CartResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.GetCart(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, h.formatter))
}

// @Summary      Add product to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        payload body request.AddCartItemRequest true "Item"
// @Success      200 {object} response.CartResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), payload.ResolveProductID(), payload.ResolveQuantity())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, h.formatter))
}

// @Summary      Set cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        payload body request.UpdateCartItemRequest true "Quantity"
// @Success      200 {object} response.CartResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	cart, err := h.usecase.UpdateQuantity(c.Request.Context(), c.Param("id"), *payload.Quantity)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, h.formatter))
}

// @Summary      Remove cart line
// @Tags         cart
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} response.CartResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart, h.formatter))
}

// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Success      204
// @Failure      500 {object} pkg.HTTPError
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
