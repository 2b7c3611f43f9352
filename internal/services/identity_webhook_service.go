package services

import (
	"context"

	"github.com/rafabene/recruit-backend/internal/domain/ports"
)

// IdentityWebhookService aplica os eventos de usuário do provedor de identidade
type IdentityWebhookService struct {
	verifier ports.WebhookVerifier
	users    *UserService
	accounts *AccountService
	logger   ports.Logger
}

// NewIdentityWebhookService cria um novo IdentityWebhookService
func NewIdentityWebhookService(
	verifier ports.WebhookVerifier,
	users *UserService,
	accounts *AccountService,
	logger ports.Logger,
) *IdentityWebhookService {
	return &IdentityWebhookService{
		verifier: verifier,
		users:    users,
		accounts: accounts,
		logger:   logger,
	}
}

// Handle verifica a assinatura antes de qualquer efeito e despacha pelo tipo do evento.
// Tipos desconhecidos são ignorados sem erro.
func (s *IdentityWebhookService) Handle(ctx context.Context, payload []byte, headers map[string][]string) error {
	event, err := s.verifier.VerifyIdentityEvent(payload, headers)
	if err != nil {
		s.logger.Warn("identity webhook rejected", "error", err)
		return err
	}

	log := s.logger.With("event", string(event.Type), "external_id", event.Identity.ExternalID)

	switch event.Type {
	case ports.IdentityUserCreated:
		if _, err := s.users.Reconcile(ctx, &event.Identity); err != nil {
			log.Error("failed to reconcile created user", "error", err)
			return err
		}
	case ports.IdentityUserUpdated:
		if _, err := s.users.ApplyIdentityUpdate(ctx, event.Identity); err != nil {
			log.Error("failed to apply user update", "error", err)
			return err
		}
	case ports.IdentityUserDeleted:
		if err := s.accounts.DeleteByExternalID(ctx, event.Identity.ExternalID); err != nil {
			return err
		}
	default:
		log.Debug("identity webhook ignored")
		return nil
	}

	log.Info("identity webhook processed")
	return nil
}
