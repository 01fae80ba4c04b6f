package routes

import (
	"net/http"

	"gemstore/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCart     = "/cart"
	PathCoupons  = "/coupons"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathConfig   = "/config"
	PathEvents   = "/events"
)

type storeHandlers struct {
	products   *handlers.ProductHandler
	cart       *handlers.CartHandler
	coupons    *handlers.CouponHandler
	checkout   *handlers.CheckoutHandler
	orders     *handlers.OrderHandler
	siteConfig *handlers.SiteConfigHandler
	events     *handlers.EventsHandler
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addStoreRoutes(rg *gin.RouterGroup, h storeHandlers) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.products.ListProducts)
		products.GET("/:id", h.products.GetProduct)
		// Admin panel
		products.POST("", h.products.CreateProduct)
		products.PUT("/:id", h.products.UpdateProduct)
		products.DELETE("/:id", h.products.DeleteProduct)
		products.PATCH("/:id/stock", h.products.SetStock)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", h.cart.GetCart)
		cart.DELETE("", h.cart.ClearCart)
		cart.POST("/items", h.cart.AddItem)
		cart.PATCH("/items/:id", h.cart.UpdateItem)
		cart.DELETE("/items/:id", h.cart.RemoveItem)

		cart.GET("/coupon", h.coupons.GetAppliedCoupon)
		cart.POST("/coupon", h.coupons.ApplyCoupon)
		cart.DELETE("/coupon", h.coupons.ClearCoupon)
	}
	rg.GET(PathCoupons, h.coupons.ListCoupons)

	checkout := rg.Group(PathCheckout)
	{
		checkout.GET("/quote", h.checkout.GetQuote)
		checkout.POST("/validate", h.checkout.ValidateCheckout)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.checkout.PlaceOrder)
		orders.GET("", h.orders.ListOrders)
		orders.GET("/stats", h.orders.GetStats)
		orders.GET("/:id", h.orders.GetOrder)
		orders.GET("/:id/timeline", h.orders.GetTimeline)
		// Admin panel
		orders.POST("/:id/advance", h.orders.AdvanceOrder)
		orders.POST("/:id/cancel", h.orders.CancelOrder)
	}

	rg.GET(PathConfig, h.siteConfig.GetConfig)
	rg.PUT(PathConfig, h.siteConfig.UpdateConfig)

	rg.GET(PathEvents, h.events.Stream)
}
