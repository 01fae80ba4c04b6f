package handlers

import (
	"context"
	response "gemstore/internal/adapter/http/dto/response"
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves order history, tracking and the admin status controls.

type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	formatter money.Formatter
}

func NewOrderHandler(uc usecase.IOrderUseCase, formatter money.Formatter) *OrderHandler {
	return &OrderHandler{usecase: uc, formatter: formatter}
}

// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Success      200 {array} response.OrderResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders, h.formatter))
}

// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, h.formatter))
}

// @Summary      Track order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.TrackingResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{id}/timeline [get]
func (h *OrderHandler) GetTimeline(c *gin.Context) {
	tracking, err := h.usecase.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTracking(tracking))
}

// @Summary      Order statistics
// @Tags         orders
// @Produce      json
// @Success      200 {object} response.StatsResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /orders/stats [get]
func (h *OrderHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats, h.formatter))
}

// AdvanceOrder on a delivered or cancelled order answers 200 with changed=false.
//
// @Summary      Advance order status
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderTransitionResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{id}/advance [post]
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	h.transition(c, h.usecase.Advance)
}

// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.OrderTransitionResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *OrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Order, bool, error),
) {
	order, changed, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OrderTransitionResponse{Changed: changed, Order: response.FromOrder(order, h.formatter)})
}
