package handlers

import (
	request "gemstore/internal/adapter/http/dto/request"
	response "gemstore/internal/adapter/http/dto/response"
	"gemstore/internal/domain/entities"
	"gemstore/internal/domain/money"
	"gemstore/internal/usecase"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase   usecase.IProductUseCase
	formatter money.Formatter
}

func NewProductHandler(uc usecase.IProductUseCase, formatter money.Formatter) *ProductHandler {
	return &ProductHandler{usecase: uc, formatter: formatter}
}

// ListProducts accepts an optional ?category=RING|GEMSTONE filter.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category query string false "RING or GEMSTONE"
// @Success      200 {array} response.ProductResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var category entities.Category
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		parsed, ok := entities.ParseCategory(raw)
		if !ok {
			writeError(c, errInvalidCategory)
			return
		}
		category = parsed
	}

	products, err := h.usecase.List(c.Request.Context(), category)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products, h.formatter))
}

// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} response.ProductResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product, h.formatter))
}

// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        payload body request.ProductRequest true "Product"
// @Success      201 {object} response.ProductResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	in, ok := bindProduct(c)
	if !ok {
		return
	}
	product, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product, h.formatter))
}

// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        payload body request.ProductRequest true "Product"
// @Success      200 {object} response.ProductResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	in, ok := bindProduct(c)
	if !ok {
		return
	}
	product, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product, h.formatter))
}

// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      204
// @Failure      404 {object} pkg.HTTPError
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Set product stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        payload body request.StockRequest true "Stock"
// @Success      200 {object} response.ProductResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /products/{id}/stock [patch]
func (h *ProductHandler) SetStock(c *gin.Context) {
	var payload request.StockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	product, err := h.usecase.SetStock(c.Request.Context(), c.Param("id"), *payload.Stock)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product, h.formatter))
}

func bindProduct(c *gin.Context) (usecase.ProductInput, bool) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return usecase.ProductInput{}, false
	}
	category, ok := payload.ResolveCategory()
	if !ok {
		writeError(c, errInvalidCategory)
		return usecase.ProductInput{}, false
	}
	return usecase.ProductInput{
		Name:        payload.ResolveName(),
		Category:    category,
		Price:       *payload.Price,
		Image:       payload.Image,
		Description: payload.Description,
		Stock:       payload.Stock,
		Featured:    payload.Featured,
	}, true
}
