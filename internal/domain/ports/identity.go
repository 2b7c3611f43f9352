package ports

import "context"

// Identity é a identidade verificada entregue pelo provedor externo
type Identity struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string

	// Metadados de papel: Role tem prioridade sobre o legado UserType
	Role     string
	UserType string
}

// IdentityVerifier valida o token de sessão emitido pelo provedor de identidade
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// IdentityEventType enumera os eventos de webhook do provedor de identidade
type IdentityEventType string

const (
	IdentityUserCreated IdentityEventType = "user.created"
	IdentityUserUpdated IdentityEventType = "user.updated"
	IdentityUserDeleted IdentityEventType = "user.deleted"
)

// IdentityEvent é um evento de webhook já verificado
type IdentityEvent struct {
	Type     IdentityEventType
	Identity Identity
}

// WebhookVerifier verifica a assinatura e decodifica eventos do provedor de identidade
type WebhookVerifier interface {
	VerifyIdentityEvent(payload []byte, headers map[string][]string) (*IdentityEvent, error)
}
