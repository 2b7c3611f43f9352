// Package identity implementa a verificação de sessões e webhooks do provedor de identidade.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/infrastructure/config"
)

// roleMetadata são os metadados de papel gravados no provedor
type roleMetadata struct {
	Role     string `json:"role"`
	UserType string `json:"userType"`
}

// SessionClaims são as claims do token de sessão
type SessionClaims struct {
	Email          string       `json:"email"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Metadata       roleMetadata `json:"metadata"`
	PublicMetadata roleMetadata `json:"public_metadata"`
	jwt.RegisteredClaims
}

// JWTVerifier valida tokens de sessão assinados com RS256 (chave pública) ou HS256 (segredo)
type JWTVerifier struct {
	key     any
	methods []string
	issuer  string
}

var _ ports.IdentityVerifier = (*JWTVerifier)(nil)

// NewJWTVerifier cria o verificador; a chave pública tem prioridade sobre o segredo
func NewJWTVerifier(cfg config.IdentityConfig) (*JWTVerifier, error) {
	v := &JWTVerifier{issuer: cfg.Issuer}

	switch {
	case cfg.JWTPublicKey != "":
		pem := strings.ReplaceAll(cfg.JWTPublicKey, `\n`, "\n")
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("invalid identity public key: %w", err)
		}
		v.key = key
		v.methods = []string{jwt.SigningMethodRS256.Alg()}
	case cfg.JWTSecret != "":
		v.key = []byte(cfg.JWTSecret)
		v.methods = []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, errors.New("identity verifier requires a public key or a secret")
	}

	return v, nil
}

// Verify valida o token e extrai a identidade
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*ports.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrUnauthenticated, err)
	}

	if claims.Subject == "" {
		return nil, errors.Join(domainerrors.ErrUnauthenticated, errors.New("token without subject"))
	}

	return claims.Identity(), nil
}

// Identity converte as claims; metadados públicos completam os privados
func (c *SessionClaims) Identity() *ports.Identity {
	role := c.Metadata.Role
	if role == "" {
		role = c.PublicMetadata.Role
	}
	userType := c.Metadata.UserType
	if userType == "" {
		userType = c.PublicMetadata.UserType
	}

	return &ports.Identity{
		ExternalID: c.Subject,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Role:       role,
		UserType:   userType,
	}
}
