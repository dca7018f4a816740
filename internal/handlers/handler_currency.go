package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the active currency.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
}

// RegisterCurrencyRoutes registers routes related to the currency.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc) {
	h := &currencyHandler{currencyService: currencyService}
	rg.GET("/currency", h.getCurrency)
}

// getCurrency godoc
// @Summary Get the active currency
// @Description Returns the currency name and its denominations, highest value first
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currency [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(h.currencyService.Current()))
}
