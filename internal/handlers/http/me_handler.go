package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/services"
)

// MeHandler expõe o usuário autenticado
type MeHandler struct {
	guard  *services.AuthGuard
	logger ports.Logger
}

// NewMeHandler cria um novo MeHandler
func NewMeHandler(guard *services.AuthGuard, logger ports.Logger) *MeHandler {
	return &MeHandler{
		guard:  guard,
		logger: logger,
	}
}

// Me retorna o usuário, o perfil do papel e se o onboarding está pendente
// @Summary Usuário autenticado
// @Tags me
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /me [get]
func (h *MeHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequireUser(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("user", "", "me"), err)
		return
	}

	if err := h.guard.LoadProfile(ctx, auth); err != nil {
		respondError(c, h.logger, op("user", auth.User.ID, "me"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeResponse(auth.User, auth.Player, auth.Coach, auth.OnboardingRequired()))
}
