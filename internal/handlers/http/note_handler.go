package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/services"
)

// NoteHandler lida com as anotações privadas dos técnicos
type NoteHandler struct {
	guard  *services.AuthGuard
	notes  *services.NoteService
	logger ports.Logger
}

// NewNoteHandler cria um novo NoteHandler
func NewNoteHandler(guard *services.AuthGuard, notes *services.NoteService, logger ports.Logger) *NoteHandler {
	return &NoteHandler{
		guard:  guard,
		notes:  notes,
		logger: logger,
	}
}

// ListForPlayer lista as anotações do técnico sobre o atleta
// @Summary Listar anotações
// @Tags notes
// @Produce json
// @Param id path string true "ID do atleta"
// @Success 200 {array} dto.NoteResponse
// @Failure 401,404 {object} dto.ErrorResponse
// @Router /players/{id}/notes [get]
func (h *NoteHandler) ListForPlayer(c *gin.Context) {
	ctx := c.Request.Context()
	playerID := c.Param("id")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("note", playerID, "list"), err)
		return
	}

	notes, err := h.notes.ListForPlayer(ctx, auth, playerID)
	if err != nil {
		respondError(c, h.logger, op("note", playerID, "list"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

// Create cria uma anotação sobre o atleta
// @Summary Criar anotação
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "ID do atleta"
// @Param body body dto.NoteRequest true "Anotação"
// @Success 201 {object} dto.NoteResponse
// @Failure 400,401,404 {object} dto.ErrorResponse
// @Router /players/{id}/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	playerID := c.Param("id")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("note", "", "create"), err)
		return
	}

	var req dto.NoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notes.Create(ctx, auth, playerID, req.Body)
	if err != nil {
		respondError(c, h.logger, op("note", "", "create"), err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// Update altera uma anotação do próprio autor
// @Summary Atualizar anotação
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "ID da anotação"
// @Param body body dto.NoteRequest true "Anotação"
// @Success 200 {object} dto.NoteResponse
// @Failure 400,401,403,404 {object} dto.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("note", id, "update"), err)
		return
	}

	var req dto.NoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notes.Update(ctx, auth, id, req.Body)
	if err != nil {
		respondError(c, h.logger, op("note", id, "update"), err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// Delete remove uma anotação do próprio autor
// @Summary Remover anotação
// @Tags notes
// @Param id path string true "ID da anotação"
// @Success 204
// @Failure 401,403,404 {object} dto.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	auth, err := h.guard.RequireCoach(ctx, middleware.IdentityFrom(c))
	if err != nil {
		respondError(c, h.logger, op("note", id, "delete"), err)
		return
	}

	if err := h.notes.Delete(ctx, auth, id); err != nil {
		respondError(c, h.logger, op("note", id, "delete"), err)
		return
	}

	c.Status(http.StatusNoContent)
}
