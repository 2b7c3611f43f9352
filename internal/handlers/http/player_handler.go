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

// PlayerHandler lida com requisições HTTP dos perfis de atleta
type PlayerHandler struct {
	guard   *services.AuthGuard
	players *services.PlayerService
	logger  ports.Logger
}

// NewPlayerHandler cria um novo PlayerHandler
func NewPlayerHandler(guard *services.AuthGuard, players *services.PlayerService, logger ports.Logger) *PlayerHandler {
	return &PlayerHandler{
		guard:   guard,
		players: players,
		logger:  logger,
	}
}

// Create cria o perfil do atleta autenticado
// @Summary Criar perfil de atleta
// @Tags players
// @Accept json
// @Produce json
// @Param body body dto.PlayerRequest true "Perfil"
// @Success 201 {object} dto.PlayerResponse
// @Failure 400,401,403,409 {object} dto.ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	auth, err := h.guard.RequireUser(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("player", "", "create"), err)
		return
	}

	var req dto.PlayerRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, ok := playerPatch(c, req)
	if !ok {
		return
	}

	player, err := h.players.Create(ctx, auth, patch)
	if err != nil {
		respondError(c, h.logger, op("player", "", "create"), err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlayerResponse(player))
}

// GetMine retorna o perfil do atleta autenticado
// @Summary Meu perfil de atleta
// @Tags players
// @Produce json
// @Success 200 {object} dto.PlayerResponse
// @Failure 401,404 {object} dto.ErrorResponse
// @Router /players/me [get]
func (h *PlayerHandler) GetMine(c *gin.Context) {
	auth, err := h.guard.RequirePlayer(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("player", "me", "get"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(auth.Player))
}

// Get retorna um perfil; o contato aparece só para quem pode vê-lo
// @Summary Buscar atleta
// @Tags players
// @Produce json
// @Param id path string true "ID do atleta"
// @Success 200 {object} dto.PlayerResponse
// @Failure 401,404 {object} dto.ErrorResponse
// @Router /players/{id} [get]
func (h *PlayerHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequireUser(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("player", id, "get"), err)
		return
	}

	player, err := h.players.Get(ctx, auth, id)
	if err != nil {
		respondError(c, h.logger, op("player", id, "get"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

// List lista atletas ativos com filtros, ordenação e paginação
// @Summary Listar atletas
// @Tags players
// @Produce json
// @Param graduationYear query int false "Ano de formatura"
// @Param position query string false "Posição primária ou secundária"
// @Param minGpa query number false "GPA mínimo"
// @Param maxGpa query number false "GPA máximo"
// @Param minHeight query string false "Altura mínima (74 ou 6'2\")"
// @Param maxHeight query string false "Altura máxima"
// @Param state query string false "Estado"
// @Param city query string false "Cidade"
// @Param search query string false "Busca por nome, escola ou clube"
// @Param sort query string false "newest, oldest, gpa_asc, gpa_desc, grad_year_asc, grad_year_desc, name_asc"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.PageResponse[dto.PlayerResponse]
// @Router /players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	page, err := h.players.List(c.Request.Context(), dto.ParsePlayerFilters(c))
	if err != nil {
		respondError(c, h.logger, op("player", "", "list"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToPlayerResponse))
}

// Update atualiza o perfil do próprio atleta
// @Summary Atualizar perfil de atleta
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "ID do atleta"
// @Param body body dto.PlayerRequest true "Campos alterados"
// @Success 200 {object} dto.PlayerResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /players/{id} [put]
func (h *PlayerHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequirePlayer(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("player", id, "update"), err)
		return
	}

	var req dto.PlayerRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, ok := playerPatch(c, req)
	if !ok {
		return
	}

	player, err := h.players.Update(ctx, auth, id, patch)
	if err != nil {
		respondError(c, h.logger, op("player", id, "update"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

// Delete aplica soft delete ao perfil do próprio atleta
// @Summary Remover perfil de atleta
// @Tags players
// @Param id path string true "ID do atleta"
// @Success 204
// @Failure 401,403,404 {object} dto.ErrorResponse
// @Router /players/{id} [delete]
func (h *PlayerHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequirePlayer(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("player", id, "delete"), err)
		return
	}

	if err := h.players.Delete(ctx, auth, id); err != nil {
		respondError(c, h.logger, op("player", id, "delete"), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto troca a foto do perfil do próprio atleta
// @Summary Enviar foto do atleta
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID do atleta"
// @Param file formData file true "JPEG, PNG ou WebP até 5 MB"
// @Success 200 {object} dto.PlayerResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /players/{id}/photo [post]
func (h *PlayerHandler) UploadPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequirePlayer(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("player", id, "upload_photo"), err)
		return
	}

	upload, closeFile, ok := readImage(c)
	if !ok {
		return
	}
	defer closeFile()

	player, err := h.players.UploadPhoto(ctx, auth, id, upload)
	if err != nil {
		respondError(c, h.logger, op("player", id, "upload_photo"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

func playerPatch(c *gin.Context, req dto.PlayerRequest) (entities.PlayerPatch, bool) {
	patch, err := req.ToPatch()
	if err != nil {
		dto.AbortWithProblem(c, dto.FieldErrorResponse(c, "height", "validation.invalid"))
		return patch, false
	}
	return patch, true
}
