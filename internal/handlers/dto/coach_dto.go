package dto

import (
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// CoachRequest é o corpo de criação e atualização do perfil de técnico
type CoachRequest struct {
	ProgramID    *string `json:"programId" binding:"omitempty,min=1,max=64"`
	FirstName    *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Title        *string `json:"title" binding:"omitempty,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,max=30"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	Bio          *string `json:"bio" binding:"omitempty,max=2000"`
}

// ToPatch converte a requisição em patch
func (r CoachRequest) ToPatch() entities.CoachPatch {
	return entities.CoachPatch{
		ProgramID:    trimmed(r.ProgramID),
		FirstName:    trimmed(r.FirstName),
		LastName:     trimmed(r.LastName),
		Title:        trimmed(r.Title),
		Phone:        trimmed(r.Phone),
		ContactEmail: trimmed(r.ContactEmail),
		Bio:          r.Bio,
	}
}

// CoachResponse representa o perfil do técnico com o programa
type CoachResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	ProgramID    string           `json:"programId"`
	Program      *ProgramResponse `json:"program,omitempty"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Title        string           `json:"title,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	ContactEmail string           `json:"contactEmail,omitempty"`
	Bio          string           `json:"bio,omitempty"`
	PhotoURL     *string          `json:"photoUrl,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ToCoachResponse converte o perfil para a resposta
func ToCoachResponse(c *entities.CoachProfile) CoachResponse {
	response := CoachResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		ProgramID:    c.ProgramID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Title:        c.Title,
		Phone:        c.Phone,
		ContactEmail: c.ContactEmail,
		Bio:          c.Bio,
		PhotoURL:     c.PhotoURL,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.Program != nil {
		p := ToProgramResponse(c.Program)
		response.Program = &p
	}
	return response
}

// SavePlayerRequest é o corpo para salvar um atleta nos favoritos
type SavePlayerRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// SavedPlayerResponse representa um atleta favorito
type SavedPlayerResponse struct {
	ID       string          `json:"id"`
	PlayerID string          `json:"playerId"`
	SavedAt  time.Time       `json:"savedAt"`
	Player   *PlayerResponse `json:"player,omitempty"`
}

// ToSavedPlayerResponse converte o favorito; o contato do atleta segue a regra de redação de quem chama
func ToSavedPlayerResponse(s *entities.SavedPlayer) SavedPlayerResponse {
	response := SavedPlayerResponse{
		ID:       s.ID,
		PlayerID: s.PlayerID,
		SavedAt:  s.CreatedAt,
	}
	if s.Player != nil {
		p := ToPlayerResponse(s.Player)
		response.Player = &p
	}
	return response
}

// NoteRequest é o corpo de criação e atualização de anotações
type NoteRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

// NoteResponse representa uma anotação
type NoteResponse struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"playerId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToNoteResponse converte a anotação para a resposta
func ToNoteResponse(n *entities.PlayerNote) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		PlayerID:  n.PlayerID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ToNoteResponses converte uma lista de anotações
func ToNoteResponses(notes []*entities.PlayerNote) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = ToNoteResponse(n)
	}
	return responses
}
