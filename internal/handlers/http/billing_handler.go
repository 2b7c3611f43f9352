package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/services"
)

// BillingHandler lida com a assinatura do usuário autenticado
type BillingHandler struct {
	guard   *services.AuthGuard
	billing *services.BillingService
	logger  ports.Logger
}

// NewBillingHandler cria um novo BillingHandler
func NewBillingHandler(guard *services.AuthGuard, billing *services.BillingService, logger ports.Logger) *BillingHandler {
	return &BillingHandler{
		guard:   guard,
		billing: billing,
		logger:  logger,
	}
}

// Status retorna a situação da assinatura
// @Summary Situação da assinatura
// @Tags billing
// @Produce json
// @Success 200 {object} dto.BillingStatusResponse
// @Failure 401,403,500 {object} dto.ErrorResponse
// @Router /billing/status [get]
func (h *BillingHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequirePermission(ctx, middleware.IdentityFrom(c), entities.PermissionBillingManage)
	if err != nil {
		respondError(c, h.logger, op("billing", "", "status"), err)
		return
	}

	status, err := h.billing.Status(ctx, auth)
	if err != nil {
		respondError(c, h.logger, op("billing", auth.User.ID, "status"), err)
		return
	}

	c.JSON(http.StatusOK, dto.BillingStatusResponse{
		Active:           status.Active,
		HasCustomer:      status.HasCustomer,
		CurrentPeriodEnd: status.CurrentPeriodEnd,
	})
}

// Checkout cria a sessão de checkout da assinatura
// @Summary Iniciar assinatura
// @Tags billing
// @Produce json
// @Success 200 {object} dto.RedirectResponse
// @Failure 401,403,500 {object} dto.ErrorResponse
// @Router /billing/checkout [post]
func (h *BillingHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequirePermission(ctx, middleware.IdentityFrom(c), entities.PermissionBillingManage)
	if err != nil {
		respondError(c, h.logger, op("billing", "", "checkout"), err)
		return
	}

	url, err := h.billing.Checkout(ctx, auth)
	if err != nil {
		respondError(c, h.logger, op("billing", auth.User.ID, "checkout"), err)
		return
	}

	c.JSON(http.StatusOK, dto.RedirectResponse{URL: url})
}

// Portal cria a sessão do portal do cliente
// @Summary Portal do cliente
// @Tags billing
// @Produce json
// @Success 200 {object} dto.RedirectResponse
// @Failure 400,401,403,500 {object} dto.ErrorResponse
// @Router /billing/portal [post]
func (h *BillingHandler) Portal(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequirePermission(ctx, middleware.IdentityFrom(c), entities.PermissionBillingManage)
	if err != nil {
		respondError(c, h.logger, op("billing", "", "portal"), err)
		return
	}

	url, err := h.billing.Portal(ctx, auth)
	if err != nil {
		respondError(c, h.logger, op("billing", auth.User.ID, "portal"), err)
		return
	}

	c.JSON(http.StatusOK, dto.RedirectResponse{URL: url})
}
