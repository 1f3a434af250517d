package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/middleware"
	"paygate-onboarding-gateway/internal/features/networks/service"
)

type NetworksHandler struct {
	service service.NetworksService
}

func NewNetworksHandler(service service.NetworksService) *NetworksHandler {
	return &NetworksHandler{service: service}
}

func (h *NetworksHandler) RegisterRoutes(router *gin.RouterGroup) {
	networks := router.Group("/networks")
	{
		networks.GET("/mappings", h.getMappings)
		networks.GET("/list", h.getNetworks)
		networks.GET("/currencies", h.getCurrencies)
	}
}

// ListResponse is the reference-data envelope.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// @Summary Get network/currency mappings
// @Description Returns every supported network and currency pairing
// @Tags networks
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 502 {object} middleware.ErrorResponse "Upstream unreachable and cache empty"
// @Router /networks/mappings [get]
func (h *NetworksHandler) getMappings(c *gin.Context) {
	mappings, err := h.service.Mappings(c.Request.Context())
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Success: true, Data: mappings})
}

// @Summary List supported networks
// @Description Returns the distinct payout networks
// @Tags networks
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 502 {object} middleware.ErrorResponse "Upstream unreachable and cache empty"
// @Router /networks/list [get]
func (h *NetworksHandler) getNetworks(c *gin.Context) {
	networks, err := h.service.Networks(c.Request.Context())
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Success: true, Data: networks})
}

// @Summary List currencies for a network
// @Description Returns the currencies available on the given payout network
// @Tags networks
// @Produce json
// @Param network query string true "Network code"
// @Success 200 {object} ListResponse
// @Failure 400 {object} middleware.ErrorResponse "Missing network parameter"
// @Failure 502 {object} middleware.ErrorResponse "Upstream unreachable and cache empty"
// @Router /networks/currencies [get]
func (h *NetworksHandler) getCurrencies(c *gin.Context) {
	network := c.Query("network")
	if network == "" {
		middleware.AbortWithAppError(c, errors.New(errors.ErrCodeBadRequest, "network query parameter is required"))
		return
	}

	currencies, err := h.service.CurrenciesFor(c.Request.Context(), network)
	if err != nil {
		middleware.AbortWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Success: true, Data: currencies})
}
