package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/services"
)

// CatalogHandler expõe programas e torneios; leituras são públicas, escritas exigem admin
type CatalogHandler struct {
	guard       *services.AuthGuard
	programs    *services.ProgramService
	tournaments *services.TournamentService
	logger      ports.Logger
}

// NewCatalogHandler cria um novo CatalogHandler
func NewCatalogHandler(
	guard *services.AuthGuard,
	programs *services.ProgramService,
	tournaments *services.TournamentService,
	logger ports.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		guard:       guard,
		programs:    programs,
		tournaments: tournaments,
		logger:      logger,
	}
}

// ListPrograms lista programas universitários
// @Summary Listar programas
// @Tags programs
// @Produce json
// @Param division query string false "D1, D2, D3, NAIA ou JUCO"
// @Param state query string false "Estado"
// @Param search query string false "Busca por nome"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.PageResponse[dto.ProgramResponse]
// @Router /programs [get]
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	page, err := h.programs.List(c.Request.Context(), dto.ParseProgramFilters(c))
	if err != nil {
		respondError(c, h.logger, op("program", "", "list"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToProgramResponse))
}

// GetProgram busca um programa
// @Summary Buscar programa
// @Tags programs
// @Produce json
// @Param id path string true "ID do programa"
// @Success 200 {object} dto.ProgramResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /programs/{id} [get]
func (h *CatalogHandler) GetProgram(c *gin.Context) {
	id := c.Param("id")

	program, err := h.programs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, op("program", id, "get"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProgramResponse(program))
}

// CreateProgram cadastra um programa
// @Summary Criar programa
// @Tags programs
// @Accept json
// @Produce json
// @Param body body dto.CreateProgramRequest true "Programa"
// @Success 201 {object} dto.ProgramResponse
// @Failure 400,401,403 {object} dto.ErrorResponse
// @Router /programs [post]
func (h *CatalogHandler) CreateProgram(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.guard.RequireAdmin(ctx, middleware.IdentityFrom(c)); err != nil {
		respondError(c, h.logger, op("program", "", "create"), err)
		return
	}

	var req dto.CreateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programs.Create(ctx, req.ToEntity())
	if err != nil {
		respondError(c, h.logger, op("program", "", "create"), err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProgramResponse(program))
}

// UpdateProgram altera um programa
// @Summary Atualizar programa
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "ID do programa"
// @Param body body dto.UpdateProgramRequest true "Campos alterados"
// @Success 200 {object} dto.ProgramResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /programs/{id} [put]
func (h *CatalogHandler) UpdateProgram(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.guard.RequireAdmin(ctx, middleware.IdentityFrom(c)); err != nil {
		respondError(c, h.logger, op("program", id, "update"), err)
		return
	}

	var req dto.UpdateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programs.Update(ctx, id, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, op("program", id, "update"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProgramResponse(program))
}

// DeleteProgram remove um programa sem técnicos vinculados
// @Summary Remover programa
// @Tags programs
// @Param id path string true "ID do programa"
// @Success 204
// @Failure 401,403,404,409 {object} dto.ErrorResponse
// @Router /programs/{id} [delete]
func (h *CatalogHandler) DeleteProgram(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.guard.RequireAdmin(ctx, middleware.IdentityFrom(c)); err != nil {
		respondError(c, h.logger, op("program", id, "delete"), err)
		return
	}

	if err := h.programs.Delete(ctx, id); err != nil {
		respondError(c, h.logger, op("program", id, "delete"), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTournaments lista torneios
// @Summary Listar torneios
// @Tags tournaments
// @Produce json
// @Param state query string false "Estado"
// @Param from query string false "Início a partir de (YYYY-MM-DD)"
// @Param to query string false "Início até (YYYY-MM-DD)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} dto.PageResponse[dto.TournamentResponse]
// @Router /tournaments [get]
func (h *CatalogHandler) ListTournaments(c *gin.Context) {
	page, err := h.tournaments.List(c.Request.Context(), dto.ParseTournamentFilters(c))
	if err != nil {
		respondError(c, h.logger, op("tournament", "", "list"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(page, dto.ToTournamentResponse))
}

// GetTournament busca um torneio
// @Summary Buscar torneio
// @Tags tournaments
// @Produce json
// @Param id path string true "ID do torneio"
// @Success 200 {object} dto.TournamentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tournaments/{id} [get]
func (h *CatalogHandler) GetTournament(c *gin.Context) {
	id := c.Param("id")

	tournament, err := h.tournaments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, op("tournament", id, "get"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentResponse(tournament))
}

// CreateTournament cadastra um torneio
// @Summary Criar torneio
// @Tags tournaments
// @Accept json
// @Produce json
// @Param body body dto.CreateTournamentRequest true "Torneio"
// @Success 201 {object} dto.TournamentResponse
// @Failure 400,401,403 {object} dto.ErrorResponse
// @Router /tournaments [post]
func (h *CatalogHandler) CreateTournament(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.guard.RequireAdmin(ctx, middleware.IdentityFrom(c)); err != nil {
		respondError(c, h.logger, op("tournament", "", "create"), err)
		return
	}

	var req dto.CreateTournamentRequest
	if !bindJSON(c, &req) {
		return
	}

	tournament, err := h.tournaments.Create(ctx, req.ToEntity())
	if err != nil {
		respondError(c, h.logger, op("tournament", "", "create"), err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTournamentResponse(tournament))
}

// UpdateTournament altera um torneio
// @Summary Atualizar torneio
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path string true "ID do torneio"
// @Param body body dto.UpdateTournamentRequest true "Campos alterados"
// @Success 200 {object} dto.TournamentResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /tournaments/{id} [put]
func (h *CatalogHandler) UpdateTournament(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.guard.RequireAdmin(ctx, middleware.IdentityFrom(c)); err != nil {
		respondError(c, h.logger, op("tournament", id, "update"), err)
		return
	}

	var req dto.UpdateTournamentRequest
	if !bindJSON(c, &req) {
		return
	}

	tournament, err := h.tournaments.Update(ctx, id, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, op("tournament", id, "update"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTournamentResponse(tournament))
}

// DeleteTournament remove um torneio
// @Summary Remover torneio
// @Tags tournaments
// @Param id path string true "ID do torneio"
// @Success 204
// @Failure 401,403,404 {object} dto.ErrorResponse
// @Router /tournaments/{id} [delete]
func (h *CatalogHandler) DeleteTournament(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.guard.RequireAdmin(ctx, middleware.IdentityFrom(c)); err != nil {
		respondError(c, h.logger, op("tournament", id, "delete"), err)
		return
	}

	if err := h.tournaments.Delete(ctx, id); err != nil {
		respondError(c, h.logger, op("tournament", id, "delete"), err)
		return
	}

	c.Status(http.StatusNoContent)
}
