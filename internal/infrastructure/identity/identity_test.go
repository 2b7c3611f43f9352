package identity

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	svix "github.com/svix/svix-webhooks/go"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/infrastructure/config"
)

const testSecret = "test-session-secret"

func signToken(t *testing.T, claims SessionClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("falha ao assinar token: %v", err)
	}
	return token
}

func validClaims() SessionClaims {
	now := time.Now()
	return SessionClaims{
		Email:     "coach@college.edu",
		FirstName: "Pat",
		LastName:  "Riley",
		Metadata:  roleMetadata{Role: "coach"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_123",
			Issuer:    "https://identity.example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier, err := NewJWTVerifier(config.IdentityConfig{JWTSecret: testSecret, Issuer: "https://identity.example.com"})
	if err != nil {
		t.Fatalf("falha ao criar verificador: %v", err)
	}

	t.Run("token válido retorna identidade", func(t *testing.T) {
		identity, err := verifier.Verify(t.Context(), signToken(t, validClaims(), testSecret))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if identity.ExternalID != "user_123" || identity.Email != "coach@college.edu" {
			t.Errorf("identidade inesperada: %+v", identity)
		}
		if identity.Role != "coach" {
			t.Errorf("esperava papel 'coach', obteve '%s'", identity.Role)
		}
	})

	t.Run("metadados públicos completam os privados", func(t *testing.T) {
		claims := validClaims()
		claims.Metadata = roleMetadata{}
		claims.PublicMetadata = roleMetadata{UserType: "player"}

		identity, err := verifier.Verify(t.Context(), signToken(t, claims, testSecret))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if identity.Role != "" || identity.UserType != "player" {
			t.Errorf("metadados inesperados: %+v", identity)
		}
	})

	tests := []struct {
		name  string
		token func() string
	}{
		{"assinatura inválida", func() string { return signToken(t, validClaims(), "other-secret") }},
		{"token expirado", func() string {
			c := validClaims()
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
			return signToken(t, c, testSecret)
		}},
		{"emissor diferente", func() string {
			c := validClaims()
			c.Issuer = "https://evil.example.com"
			return signToken(t, c, testSecret)
		}},
		{"sem subject", func() string {
			c := validClaims()
			c.Subject = ""
			return signToken(t, c, testSecret)
		}},
		{"lixo", func() string { return "not-a-token" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(t.Context(), tt.token())
			if !errors.Is(err, domainerrors.ErrUnauthenticated) {
				t.Errorf("esperava ErrUnauthenticated, obteve %v", err)
			}
		})
	}
}

func TestNewJWTVerifier(t *testing.T) {
	t.Run("sem chave nem segredo", func(t *testing.T) {
		if _, err := NewJWTVerifier(config.IdentityConfig{}); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("chave pública inválida", func(t *testing.T) {
		if _, err := NewJWTVerifier(config.IdentityConfig{JWTPublicKey: "not-a-pem"}); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}

var webhookSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("identity-webhook-test-secret"))

func signedHeaders(t *testing.T, payload []byte) map[string][]string {
	t.Helper()

	wh, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		t.Fatalf("falha ao criar webhook: %v", err)
	}

	now := time.Now()
	signature, err := wh.Sign("msg_1", now, payload)
	if err != nil {
		t.Fatalf("falha ao assinar payload: %v", err)
	}

	h := http.Header{}
	h.Set("svix-id", "msg_1")
	h.Set("svix-timestamp", strconv.FormatInt(now.Unix(), 10))
	h.Set("svix-signature", signature)
	return h
}

func TestSvixWebhookVerifier(t *testing.T) {
	verifier, err := NewSvixWebhookVerifier(webhookSecret)
	if err != nil {
		t.Fatalf("falha ao criar verificador: %v", err)
	}

	payload := []byte(`{
		"type": "user.created",
		"data": {
			"id": "user_abc",
			"first_name": "Sam",
			"last_name": "Lee",
			"primary_email_address_id": "idn_2",
			"email_addresses": [
				{"id": "idn_1", "email_address": "old@example.com"},
				{"id": "idn_2", "email_address": "sam@example.com"}
			],
			"public_metadata": {"role": "coach"},
			"unsafe_metadata": {"userType": "player"}
		}
	}`)

	t.Run("assinatura válida decodifica o evento", func(t *testing.T) {
		event, err := verifier.VerifyIdentityEvent(payload, signedHeaders(t, payload))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if event.Type != ports.IdentityUserCreated {
			t.Errorf("tipo inesperado: %s", event.Type)
		}
		if event.Identity.Email != "sam@example.com" {
			t.Errorf("esperava email primário, obteve '%s'", event.Identity.Email)
		}
		if event.Identity.Role != "coach" || event.Identity.UserType != "player" {
			t.Errorf("metadados inesperados: %+v", event.Identity)
		}
	})

	t.Run("payload adulterado é rejeitado", func(t *testing.T) {
		headers := signedHeaders(t, payload)
		tampered := []byte(`{"type":"user.deleted","data":{"id":"user_victim"}}`)

		_, err := verifier.VerifyIdentityEvent(tampered, headers)
		if !errors.Is(err, domainerrors.ErrInvalidWebhook) {
			t.Errorf("esperava ErrInvalidWebhook, obteve %v", err)
		}
	})

	t.Run("sem cabeçalhos é rejeitado", func(t *testing.T) {
		_, err := verifier.VerifyIdentityEvent(payload, map[string][]string{})
		if !errors.Is(err, domainerrors.ErrInvalidWebhook) {
			t.Errorf("esperava ErrInvalidWebhook, obteve %v", err)
		}
	})
}
