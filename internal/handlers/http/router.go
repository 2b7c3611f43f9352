package http

import "github.com/gin-gonic/gin"

// Handlers agrupa os handlers registrados na API
type Handlers struct {
	Me       *MeHandler
	Players  *PlayerHandler
	Coaches  *CoachHandler
	Notes    *NoteHandler
	Catalog  *CatalogHandler
	Billing  *BillingHandler
	Webhooks *WebhookHandler
}

// RegisterRoutes registra as rotas da API no grupo (normalmente /api/v1).
// A autorização é feita em cada handler pelo AuthGuard.
func RegisterRoutes(v1 *gin.RouterGroup, h Handlers) {
	v1.GET("/me", h.Me.Me)

	players := v1.Group("/players")
	{
		players.POST("", h.Players.Create)
		players.GET("", h.Players.List)
		players.GET("/me", h.Players.GetMine)
		players.GET("/:id", h.Players.Get)
		players.PUT("/:id", h.Players.Update)
		players.DELETE("/:id", h.Players.Delete)
		players.POST("/:id/photo", h.Players.UploadPhoto)
		players.GET("/:id/notes", h.Notes.ListForPlayer)
		players.POST("/:id/notes", h.Notes.Create)
	}

	notes := v1.Group("/notes")
	{
		notes.PUT("/:id", h.Notes.Update)
		notes.DELETE("/:id", h.Notes.Delete)
	}

	coaches := v1.Group("/coaches")
	{
		coaches.POST("", h.Coaches.Create)
		coaches.GET("/me", h.Coaches.GetMine)
		coaches.PUT("/:id", h.Coaches.Update)
		coaches.POST("/:id/photo", h.Coaches.UploadPhoto)
		coaches.GET("/me/saved-players", h.Coaches.ListSaved)
		coaches.POST("/me/saved-players", h.Coaches.SavePlayer)
		coaches.DELETE("/me/saved-players/:playerId", h.Coaches.UnsavePlayer)
	}

	programs := v1.Group("/programs")
	{
		programs.GET("", h.Catalog.ListPrograms)
		programs.GET("/:id", h.Catalog.GetProgram)
		programs.POST("", h.Catalog.CreateProgram)
		programs.PUT("/:id", h.Catalog.UpdateProgram)
		programs.DELETE("/:id", h.Catalog.DeleteProgram)
	}

	tournaments := v1.Group("/tournaments")
	{
		tournaments.GET("", h.Catalog.ListTournaments)
		tournaments.GET("/:id", h.Catalog.GetTournament)
		tournaments.POST("", h.Catalog.CreateTournament)
		tournaments.PUT("/:id", h.Catalog.UpdateTournament)
		tournaments.DELETE("/:id", h.Catalog.DeleteTournament)
	}

	billing := v1.Group("/billing")
	{
		billing.GET("/status", h.Billing.Status)
		billing.POST("/checkout", h.Billing.Checkout)
		billing.POST("/portal", h.Billing.Portal)
	}

	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/identity", h.Webhooks.Identity)
		webhooks.POST("/billing", h.Webhooks.Billing)
	}
}
