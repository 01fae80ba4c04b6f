package handlers

import (
	request "gemstore/internal/adapter/http/dto/request"
	response "gemstore/internal/adapter/http/dto/response"
	"gemstore/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SiteConfigHandler struct {
	usecase usecase.ISiteConfigUseCase
}

func NewSiteConfigHandler(uc usecase.ISiteConfigUseCase) *SiteConfigHandler {
	return &SiteConfigHandler{usecase: uc}
}

// @Summary      Get site configuration
// @Tags         config
// @Produce      json
// @Success      200 {object} response.SiteConfigResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /config [get]
func (h *SiteConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSiteConfig(cfg))
}

// @Summary      Update site configuration
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        payload body request.SiteConfigRequest true "Configuration"
// @Success      200 {object} response.SiteConfigResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /config [put]
func (h *SiteConfigHandler) UpdateConfig(c *gin.Context) {
	var payload request.SiteConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cfg, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSiteConfig(cfg))
}
