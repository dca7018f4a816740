package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	portssvc "github.com/SscSPs/coin_vault_app/internal/core/ports/services"
	"github.com/SscSPs/coin_vault_app/internal/dto"
	"github.com/SscSPs/coin_vault_app/internal/middleware"
	"github.com/SscSPs/coin_vault_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// vaultHandler handles balance, slot and deposit/withdraw requests.
type vaultHandler struct {
	vaultService    portssvc.VaultSvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

// RegisterVaultRoutes registers the per-account vault routes.
func RegisterVaultRoutes(rg *gin.RouterGroup, vaultService portssvc.VaultSvcFacade, currencyService portssvc.CurrencyReaderSvc) {
	h := &vaultHandler{vaultService: vaultService, currencyService: currencyService}

	vault := rg.Group("/accounts/:accountID")
	{
		vault.GET("/balance", h.getBalance)
		vault.GET("/slots", h.getSlots)
		vault.POST("/deposit", h.deposit)
		vault.POST("/withdraw", h.withdraw)
		vault.GET("/entries", h.listEntries)
	}
}

// getBalance godoc
// @Summary Get an account balance
// @Description Returns the container value in atomic units and in display units
// @Tags vault
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *vaultHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	units, err := h.vaultService.Balance(c.Request.Context(), accountID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceResponse(accountID, units, h.currencyService.Current()))
}

// getSlots godoc
// @Summary Get container contents
// @Tags vault
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.SlotsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/slots [get]
func (h *vaultHandler) getSlots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	contents, err := h.vaultService.Contents(c.Request.Context(), accountID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to read slots")
		return
	}
	c.JSON(http.StatusOK, dto.ToSlotsResponse(accountID, contents, h.currencyService.Current()))
}

// deposit godoc
// @Summary Deposit into an account
// @Description Adds tokens worth up to amount. A full container yields a partial result, not an error.
// @Tags vault
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   body body dto.AmountRequest true "Amount in display units"
// @Success 200 {object} dto.VaultOperationResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/deposit [post]
func (h *vaultHandler) deposit(c *gin.Context) {
	h.applyAmount(c, domain.OperationDeposit)
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Removes tokens worth up to amount, breaking a larger token when needed.
// @Tags vault
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   body body dto.AmountRequest true "Amount in display units"
// @Success 200 {object} dto.VaultOperationResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/withdraw [post]
func (h *vaultHandler) withdraw(c *gin.Context) {
	h.applyAmount(c, domain.OperationWithdraw)
}

func (h *vaultHandler) applyAmount(c *gin.Context, op domain.VaultOperationType) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("operation", string(op)))
	accountID := c.Param("accountID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind amount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cur := h.currencyService.Current()
	units, err := utils.ToAtomicUnits(req.Amount, cur.Digits)
	if err != nil {
		respondError(c, logger, err, "Invalid amount")
		return
	}

	var result *domain.VaultOperation
	if op == domain.OperationDeposit {
		result, err = h.vaultService.Deposit(c.Request.Context(), accountID, units, userID)
	} else {
		result, err = h.vaultService.Withdraw(c.Request.Context(), accountID, units, userID)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to update vault")
		return
	}
	c.JSON(http.StatusOK, dto.ToVaultOperationResponse(result, cur.Digits))
}

// listEntries godoc
// @Summary List ledger entries
// @Tags vault
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/entries [get]
func (h *vaultHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.vaultService.ListEntries(c.Request.Context(), accountID, userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, page)
}
