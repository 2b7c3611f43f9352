package ports

import (
	"context"
	"time"
)

// CheckoutRequest contém os dados de uma sessão de checkout de assinatura
type CheckoutRequest struct {
	CustomerID string
	UserID     string
	SuccessURL string
	CancelURL  string
}

// BillingEventType enumera os eventos de billing relevantes
type BillingEventType string

const (
	BillingCheckoutCompleted   BillingEventType = "checkout.session.completed"
	BillingSubscriptionUpdated BillingEventType = "customer.subscription.updated"
	BillingSubscriptionDeleted BillingEventType = "customer.subscription.deleted"
)

// BillingEvent é um evento de webhook de billing já verificado
type BillingEvent struct {
	Type             BillingEventType
	UserID           string // client reference, presente no checkout
	CustomerID       string
	SubscriptionID   string
	Active           bool
	CurrentPeriodEnd *time.Time
}

// BillingProvider abstrai o provedor de assinaturas
type BillingProvider interface {
	HasActiveSubscription(ctx context.Context, customerID string) (bool, error)
	CreateCustomer(ctx context.Context, userID, email, name string) (string, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	ParseWebhook(payload []byte, signature string) (*BillingEvent, error)
}
