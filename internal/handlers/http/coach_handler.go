package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/services"
)

// CoachHandler lida com perfis de técnico e seus favoritos
type CoachHandler struct {
	guard   *services.AuthGuard
	coaches *services.CoachService
	logger  ports.Logger
}

// NewCoachHandler cria um novo CoachHandler
func NewCoachHandler(guard *services.AuthGuard, coaches *services.CoachService, logger ports.Logger) *CoachHandler {
	return &CoachHandler{
		guard:   guard,
		coaches: coaches,
		logger:  logger,
	}
}

// Create cria o perfil do técnico autenticado
// @Summary Criar perfil de técnico
// @Tags coaches
// @Accept json
// @Produce json
// @Param body body dto.CoachRequest true "Perfil"
// @Success 201 {object} dto.CoachResponse
// @Failure 400,401,403,404,409 {object} dto.ErrorResponse
// @Router /coaches [post]
func (h *CoachHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequireUser(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("coach", "", "create"), err)
		return
	}

	var req dto.CoachRequest
	if !bindJSON(c, &req) {
		return
	}

	coach, err := h.coaches.Create(ctx, auth, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, op("coach", "", "create"), err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCoachResponse(coach))
}

// GetMine retorna o perfil do técnico autenticado com o programa
// @Summary Meu perfil de técnico
// @Tags coaches
// @Produce json
// @Success 200 {object} dto.CoachResponse
// @Failure 401,404 {object} dto.ErrorResponse
// @Router /coaches/me [get]
func (h *CoachHandler) GetMine(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("coach", "me", "get"), err)
		return
	}

	coach, err := h.coaches.GetMine(ctx, auth)
	if err != nil {
		respondError(c, h.logger, op("coach", "me", "get"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachResponse(coach))
}

// Update atualiza o perfil do próprio técnico
// @Summary Atualizar perfil de técnico
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path string true "ID do técnico"
// @Param body body dto.CoachRequest true "Campos alterados"
// @Success 200 {object} dto.CoachResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /coaches/{id} [put]
func (h *CoachHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("coach", id, "update"), err)
		return
	}

	var req dto.CoachRequest
	if !bindJSON(c, &req) {
		return
	}

	coach, err := h.coaches.Update(ctx, auth, id, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, op("coach", id, "update"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachResponse(coach))
}

// UploadPhoto troca a foto do próprio técnico
// @Summary Enviar foto do técnico
// @Tags coaches
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID do técnico"
// @Param file formData file true "JPEG, PNG ou WebP até 5 MB"
// @Success 200 {object} dto.CoachResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /coaches/{id}/photo [post]
func (h *CoachHandler) UploadPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("coach", id, "upload_photo"), err)
		return
	}

	upload, closeFile, ok := readImage(c)
	if !ok {
		return
	}
	defer closeFile()

	coach, err := h.coaches.UploadPhoto(ctx, auth, id, upload)
	if err != nil {
		respondError(c, h.logger, op("coach", id, "upload_photo"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachResponse(coach))
}

// ListSaved lista os atletas favoritos do técnico
// @Summary Listar favoritos
// @Tags coaches
// @Produce json
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.PageResponse[dto.SavedPlayerResponse]
// @Failure 401,404 {object} dto.ErrorResponse
// @Router /coaches/me/saved-players [get]
func (h *CoachHandler) ListSaved(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("saved_player", "", "list"), err)
		return
	}

	page, err := h.coaches.ListSaved(ctx, auth, dto.ParsePagination(c))
	if err != nil {
		respondError(c, h.logger, op("saved_player", "", "list"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToSavedPlayerResponse))
}

// SavePlayer adiciona um atleta aos favoritos
// @Summary Salvar atleta
// @Tags coaches
// @Accept json
// @Produce json
// @Param body body dto.SavePlayerRequest true "Atleta"
// @Success 201 {object} dto.SavedPlayerResponse
// @Failure 400,401,404,409 {object} dto.ErrorResponse
// @Router /coaches/me/saved-players [post]
func (h *CoachHandler) SavePlayer(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("saved_player", "", "create"), err)
		return
	}

	var req dto.SavePlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	saved, err := h.coaches.SavePlayer(ctx, auth, req.PlayerID)
	if err != nil {
		respondError(c, h.logger, op("saved_player", req.PlayerID, "create"), err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSavedPlayerResponse(saved))
}

// UnsavePlayer remove um atleta dos favoritos
// @Summary Remover favorito
// @Tags coaches
// @Param playerId path string true "ID do atleta"
// @Success 204
// @Failure 401,404 {object} dto.ErrorResponse
// @Router /coaches/me/saved-players/{playerId} [delete]
func (h *CoachHandler) UnsavePlayer(c *gin.Context) {
	ctx := c.Request.Context()
	playerID := c.Param("playerId")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("saved_player", playerID, "delete"), err)
		return
	}

	if err := h.coaches.UnsavePlayer(ctx, auth, playerID); err != nil {
		respondError(c, h.logger, op("saved_player", playerID, "delete"), err)
		return
	}

	c.Status(http.StatusNoContent)
}
