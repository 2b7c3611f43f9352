// Package billing implementa o provedor de assinaturas com Stripe.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/infrastructure/config"
)

// StripeProvider implementa ports.BillingProvider
type StripeProvider struct {
	sc            *client.API
	priceID       string
	webhookSecret string
}

var _ ports.BillingProvider = (*StripeProvider)(nil)

// NewStripeProvider cria o provedor a partir da configuração
func NewStripeProvider(cfg config.BillingConfig) *StripeProvider {
	return &StripeProvider{
		sc:            client.New(cfg.StripeSecretKey, nil),
		priceID:       cfg.StripePriceID,
		webhookSecret: cfg.StripeWebhookSecret,
	}
}

// HasActiveSubscription indica se o cliente tem assinatura ativa ou em período de teste
func (p *StripeProvider) HasActiveSubscription(ctx context.Context, customerID string) (bool, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx

	it := p.sc.Subscriptions.List(params)
	for it.Next() {
		if isActive(it.Subscription()) {
			return true, nil
		}
	}
	if err := it.Err(); err != nil {
		return false, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return false, nil
}

func (p *StripeProvider) CreateCustomer(ctx context.Context, userID, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata("userId", userID)

	customer, err := p.sc.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	return customer.ID, nil
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req ports.CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:          stripe.String(req.CustomerID),
		ClientReferenceID: stripe.String(req.UserID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(p.priceID), Quantity: stripe.Int64(1)},
		},
	}
	params.Context = ctx

	session, err := p.sc.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

func (p *StripeProvider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	session, err := p.sc.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}
	return session.URL, nil
}

// ParseWebhook verifica a assinatura e converte o evento; tipos ignorados retornam evento sem Type conhecido
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*ports.BillingEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, errors.Join(domainerrors.ErrInvalidWebhook, err)
	}

	switch ports.BillingEventType(event.Type) {
	case ports.BillingCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		result := &ports.BillingEvent{
			Type:   ports.BillingCheckoutCompleted,
			UserID: session.ClientReferenceID,
			Active: true,
		}
		if session.Customer != nil {
			result.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			result.SubscriptionID = session.Subscription.ID
			result.CurrentPeriodEnd = periodEnd(session.Subscription)
		}
		return result, nil

	case ports.BillingSubscriptionUpdated, ports.BillingSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		result := &ports.BillingEvent{
			Type:             ports.BillingEventType(event.Type),
			SubscriptionID:   sub.ID,
			Active:           event.Type != stripe.EventTypeCustomerSubscriptionDeleted && isActive(&sub),
			CurrentPeriodEnd: periodEnd(&sub),
		}
		if sub.Customer != nil {
			result.CustomerID = sub.Customer.ID
		}
		return result, nil
	}

	return &ports.BillingEvent{Type: ports.BillingEventType(event.Type)}, nil
}

func isActive(sub *stripe.Subscription) bool {
	return sub.Status == stripe.SubscriptionStatusActive || sub.Status == stripe.SubscriptionStatusTrialing
}

func periodEnd(sub *stripe.Subscription) *time.Time {
	if sub.CurrentPeriodEnd == 0 {
		return nil
	}
	t := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	return &t
}
