package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/infrastructure/i18n"
)

// T traduz uma mensagem no idioma da requisição
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Player"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := c.Value(middleware.I18nServiceContextKey).(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return "en"
}
