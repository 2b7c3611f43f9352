package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
)

// SvixWebhookVerifier verifica webhooks do provedor de identidade assinados via svix
type SvixWebhookVerifier struct {
	wh *svix.Webhook
}

var _ ports.WebhookVerifier = (*SvixWebhookVerifier)(nil)

// NewSvixWebhookVerifier cria o verificador a partir do segredo (whsec_...)
func NewSvixWebhookVerifier(secret string) (*SvixWebhookVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid identity webhook secret: %w", err)
	}
	return &SvixWebhookVerifier{wh: wh}, nil
}

type emailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type userPayload struct {
	ID                    string         `json:"id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	PublicMetadata        roleMetadata   `json:"public_metadata"`
	UnsafeMetadata        roleMetadata   `json:"unsafe_metadata"`
}

type webhookEnvelope struct {
	Type string      `json:"type"`
	Data userPayload `json:"data"`
}

// VerifyIdentityEvent verifica a assinatura antes de decodificar o corpo
func (v *SvixWebhookVerifier) VerifyIdentityEvent(payload []byte, headers map[string][]string) (*ports.IdentityEvent, error) {
	if err := v.wh.Verify(payload, http.Header(headers)); err != nil {
		return nil, errors.Join(domainerrors.ErrInvalidWebhook, err)
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, errors.Join(domainerrors.ErrValidation, fmt.Errorf("invalid webhook payload: %w", err))
	}
	if envelope.Data.ID == "" {
		return nil, errors.Join(domainerrors.ErrValidation, errors.New("webhook payload without user id"))
	}

	data := envelope.Data
	// Papel explícito só vem dos metadados públicos (gravados pelo servidor)
	role := data.PublicMetadata.Role
	userType := data.PublicMetadata.UserType
	if userType == "" {
		userType = data.UnsafeMetadata.UserType
	}

	return &ports.IdentityEvent{
		Type: ports.IdentityEventType(envelope.Type),
		Identity: ports.Identity{
			ExternalID: data.ID,
			Email:      data.primaryEmail(),
			FirstName:  data.FirstName,
			LastName:   data.LastName,
			Role:       role,
			UserType:   userType,
		},
	}, nil
}

// primaryEmail retorna o email primário ou, na falta dele, o primeiro
func (u userPayload) primaryEmail() string {
	for _, e := range u.EmailAddresses {
		if e.ID == u.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}
