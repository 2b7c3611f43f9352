package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
)

const (
	// IdentityContextKey guarda a *ports.Identity verificada da requisição
	IdentityContextKey = "identity"
	// SessionCookieName é o cookie de sessão do provedor de identidade
	SessionCookieName = "__session"
)

// IdentityMiddleware resolve o token de sessão em identidade verificada.
// Requisições sem token ou com token inválido seguem sem identidade; os guards decidem o 401.
type IdentityMiddleware struct {
	verifier ports.IdentityVerifier
	logger   ports.Logger
}

// NewIdentityMiddleware cria um novo IdentityMiddleware
func NewIdentityMiddleware(verifier ports.IdentityVerifier, logger ports.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// Resolve verifica o token do header Authorization ou do cookie de sessão
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			m.logger.Debug("session token rejected", "path", c.Request.URL.Path, "error", err)
			c.Next()
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// IdentityFrom retorna a identidade da requisição ou nil
func IdentityFrom(c *gin.Context) *ports.Identity {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*ports.Identity)
	return identity
}

func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
