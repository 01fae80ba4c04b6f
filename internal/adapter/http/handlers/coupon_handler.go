package handlers

import (
	request "gemstore/internal/adapter/http/dto/request"
	response "gemstore/internal/adapter/http/dto/response"
	"gemstore/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CouponHandler lists the coupon catalog and manages the applied-coupon slot.
//
// A rejected coupon is not an HTTP error: it is returned with 200 and
// applied=false so the storefront can show the message.

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

// @Summary      List coupons
// @Tags         coupons
// @Produce      json
// @Success      200 {array} response.CouponResponse
// @Router       /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCoupons(h.usecase.ListCoupons()))
}

// @Summary      Apply coupon to cart
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        payload body request.ApplyCouponRequest true "Coupon code"
// @Success      200 {object} response.DiscountResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /cart/coupon [post]
func (h *CouponHandler) ApplyCoupon(c *gin.Context) {
	var payload request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Apply(c.Request.Context(), payload.Code)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDiscountResult(payload.Code, result))
}

// GetAppliedCoupon re-evaluates the applied coupon against the current cart.
// 204 means no coupon is applied.
//
// @Summary      Get applied coupon
// @Tags         coupons
// @Produce      json
// @Success      200 {object} response.DiscountResponse
// @Success      204
// @Router       /cart/coupon [get]
func (h *CouponHandler) GetAppliedCoupon(c *gin.Context) {
	applied, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	if applied.Code == "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromDiscountResult(applied.Code, applied.Result))
}

// @Summary      Remove applied coupon
// @Tags         coupons
// @Produce      json
// @Success      204
// @Failure      500 {object} pkg.HTTPError
// @Router       /cart/coupon [delete]
func (h *CouponHandler) ClearCoupon(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
