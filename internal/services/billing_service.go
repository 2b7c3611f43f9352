package services

import (
	"context"
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// BillingStatus resume a assinatura do usuário
type BillingStatus struct {
	Active           bool
	HasCustomer      bool
	CurrentPeriodEnd *time.Time
}

// BillingService gerencia assinaturas dos técnicos
type BillingService struct {
	userRepo repositories.UserRepository
	provider ports.BillingProvider
	appURL   string
	logger   ports.Logger
}

// NewBillingService cria um novo BillingService
func NewBillingService(
	userRepo repositories.UserRepository,
	provider ports.BillingProvider,
	appURL string,
	logger ports.Logger,
) *BillingService {
	return &BillingService{
		userRepo: userRepo,
		provider: provider,
		appURL:   appURL,
		logger:   logger,
	}
}

// HasActiveSubscription consulta o provedor; usuários sem cliente nunca têm assinatura
func (s *BillingService) HasActiveSubscription(ctx context.Context, user *entities.User) (bool, error) {
	if !user.HasBillingCustomer() {
		return false, nil
	}

	active, err := s.provider.HasActiveSubscription(ctx, *user.StripeCustomerID)
	if err != nil {
		return false, domainerrors.NewUpstreamError("billing", err)
	}
	return active, nil
}

// Status retorna a situação da assinatura do usuário autenticado
func (s *BillingService) Status(ctx context.Context, auth *AuthContext) (*BillingStatus, error) {
	active, err := s.HasActiveSubscription(ctx, auth.User)
	if err != nil {
		return nil, err
	}

	return &BillingStatus{
		Active:           active,
		HasCustomer:      auth.User.HasBillingCustomer(),
		CurrentPeriodEnd: auth.User.StripeCurrentPeriodEnd,
	}, nil
}

// Checkout cria a sessão de assinatura, criando o cliente no primeiro uso
func (s *BillingService) Checkout(ctx context.Context, auth *AuthContext) (string, error) {
	user := auth.User

	if !user.HasBillingCustomer() {
		customerID, err := s.provider.CreateCustomer(ctx, user.ID, user.Email.String(), user.FullName())
		if err != nil {
			return "", domainerrors.NewUpstreamError("billing", err)
		}

		user.StripeCustomerID = &customerID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return "", err
		}

		s.logger.Info("billing customer created", "user_id", user.ID, "customer_id", customerID)
	}

	url, err := s.provider.CreateCheckoutSession(ctx, ports.CheckoutRequest{
		CustomerID: *user.StripeCustomerID,
		UserID:     user.ID,
		SuccessURL: s.appURL + "/billing?status=success",
		CancelURL:  s.appURL + "/billing?status=cancelled",
	})
	if err != nil {
		return "", domainerrors.NewUpstreamError("billing", err)
	}
	return url, nil
}

// Portal cria a sessão do portal do cliente; exige cliente existente
func (s *BillingService) Portal(ctx context.Context, auth *AuthContext) (string, error) {
	if !auth.User.HasBillingCustomer() {
		return "", domainerrors.NewValidationError("customer", domainerrors.ErrNoBillingClient.Error())
	}

	url, err := s.provider.CreatePortalSession(ctx, *auth.User.StripeCustomerID, s.appURL+"/billing")
	if err != nil {
		return "", domainerrors.NewUpstreamError("billing", err)
	}
	return url, nil
}

// HandleWebhook verifica e aplica um evento do provedor; eventos repetidos produzem o mesmo estado
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}

	log := s.logger.With("event_type", event.Type, "customer_id", event.CustomerID)

	switch event.Type {
	case ports.BillingCheckoutCompleted:
		user, err := s.findEventUser(ctx, event)
		if err != nil {
			return err
		}
		if user == nil {
			log.Warn("billing event for unknown user ignored", "user_id", event.UserID)
			return nil
		}

		if event.CustomerID != "" {
			user.StripeCustomerID = &event.CustomerID
		}
		if event.SubscriptionID != "" {
			user.StripeSubscriptionID = &event.SubscriptionID
		}
		if event.CurrentPeriodEnd != nil {
			user.StripeCurrentPeriodEnd = event.CurrentPeriodEnd
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return err
		}
		log.Info("checkout completed", "user_id", user.ID)

	case ports.BillingSubscriptionUpdated, ports.BillingSubscriptionDeleted:
		user, err := s.findEventUser(ctx, event)
		if err != nil {
			return err
		}
		if user == nil {
			log.Warn("billing event for unknown customer ignored")
			return nil
		}

		if event.Type == ports.BillingSubscriptionDeleted {
			user.StripeSubscriptionID = nil
		} else if event.SubscriptionID != "" {
			user.StripeSubscriptionID = &event.SubscriptionID
		}
		user.StripeCurrentPeriodEnd = event.CurrentPeriodEnd
		if err := s.userRepo.Update(ctx, user); err != nil {
			return err
		}
		log.Info("subscription refreshed", "user_id", user.ID, "active", event.Active)

	default:
		log.Debug("billing event ignored")
	}

	return nil
}

func (s *BillingService) findEventUser(ctx context.Context, event *ports.BillingEvent) (*entities.User, error) {
	if event.UserID != "" {
		user, err := s.userRepo.FindByID(ctx, event.UserID)
		if err != nil || user != nil {
			return user, err
		}
	}
	if event.CustomerID == "" {
		return nil, nil
	}
	return s.userRepo.FindByStripeCustomerID(ctx, event.CustomerID)
}

