package services_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
)

var _ = Describe("BillingService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("checkout cria o cliente apenas no primeiro uso", func() {
		auth := e.signUpCoach("ext_buyer")

		url, err := e.billingService.Checkout(e.ctx, auth)
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(Equal("https://checkout.test/cus_" + auth.User.ID))

		_, err = e.billingService.Checkout(e.ctx, auth)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.billing.customers).To(Equal(1))

		stored, err := e.users.FindByID(e.ctx, auth.User.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.HasBillingCustomer()).To(BeTrue())
	})

	It("portal sem cliente é erro de validação", func() {
		auth := e.signUpCoach("ext_nocus")

		_, err := e.billingService.Portal(e.ctx, auth)
		Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
	})

	It("falha do provedor vira erro upstream", func() {
		auth := e.signUpCoach("ext_down")
		customerID := "cus_down"
		auth.User.StripeCustomerID = &customerID
		e.billing.checkErr = errBoom

		_, err := e.billingService.Status(e.ctx, auth)
		Expect(errors.Is(err, domainerrors.ErrUpstream)).To(BeTrue())
	})

	Describe("HandleWebhook", func() {
		It("checkout concluído vincula cliente e assinatura ao usuário", func() {
			auth := e.signUpCoach("ext_paid")
			end := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Millisecond)
			e.billing.event = &ports.BillingEvent{
				Type:             ports.BillingCheckoutCompleted,
				UserID:           auth.User.ID,
				CustomerID:       "cus_paid",
				SubscriptionID:   "sub_1",
				CurrentPeriodEnd: &end,
			}

			Expect(e.billingService.HandleWebhook(e.ctx, nil, "sig")).To(Succeed())
			Expect(e.billingService.HandleWebhook(e.ctx, nil, "sig")).To(Succeed())

			user, err := e.users.FindByStripeCustomerID(e.ctx, "cus_paid")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(auth.User.ID))
			Expect(*user.StripeSubscriptionID).To(Equal("sub_1"))
			Expect(user.StripeCurrentPeriodEnd.Equal(end)).To(BeTrue())
		})

		It("assinatura removida limpa a assinatura", func() {
			auth := e.signUpCoach("ext_cancel")
			customerID, subID := "cus_cancel", "sub_2"
			auth.User.StripeCustomerID = &customerID
			auth.User.StripeSubscriptionID = &subID
			Expect(e.users.Update(e.ctx, auth.User)).To(Succeed())

			e.billing.event = &ports.BillingEvent{Type: ports.BillingSubscriptionDeleted, CustomerID: customerID}
			Expect(e.billingService.HandleWebhook(e.ctx, nil, "sig")).To(Succeed())

			user, err := e.users.FindByID(e.ctx, auth.User.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.StripeSubscriptionID).To(BeNil())
		})

		It("cliente desconhecido é ignorado", func() {
			e.billing.event = &ports.BillingEvent{Type: ports.BillingSubscriptionUpdated, CustomerID: "cus_unknown"}
			Expect(e.billingService.HandleWebhook(e.ctx, nil, "sig")).To(Succeed())
		})

		It("assinatura inválida é rejeitada", func() {
			e.billing.parseErr = domainerrors.ErrInvalidWebhook
			err := e.billingService.HandleWebhook(e.ctx, nil, "forged")
			Expect(errors.Is(err, domainerrors.ErrInvalidWebhook)).To(BeTrue())
		})
	})
})
