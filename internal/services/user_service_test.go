package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/infrastructure/logging"
	"github.com/rafabene/recruit-backend/internal/services"
)

// staleUserRepository simula uma leitura feita antes da inserção concorrente:
// as primeiras buscas por external id não enxergam o usuário já gravado.
type staleUserRepository struct {
	repositories.UserRepository
	misses  int
	lookups int
}

func (r *staleUserRepository) FindByExternalID(ctx context.Context, externalID string) (*entities.User, error) {
	r.lookups++
	if r.misses > 0 {
		r.misses--
		return nil, nil
	}
	return r.UserRepository.FindByExternalID(ctx, externalID)
}

var _ = Describe("UserService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Reconcile", func() {
		It("cria o usuário no primeiro contato com o papel dos metadados", func() {
			user, err := e.userService.Reconcile(e.ctx, identity("ext_coach", "coach"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.Role).To(Equal(entities.RoleCoach))
			Expect(user.Email.String()).To(Equal("ext_coach@example.com"))
			Expect(user.PasswordHash).To(HavePrefix("$2"))
		})

		It("usa userType legado quando role está ausente", func() {
			id := identity("ext_legacy", "")
			id.UserType = "coach"

			user, err := e.userService.Reconcile(e.ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleCoach))
		})

		It("nunca concede admin via userType", func() {
			id := identity("ext_sneaky", "")
			id.UserType = "admin"

			user, err := e.userService.Reconcile(e.ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RolePlayer))
		})

		It("assume player sem metadados de papel", func() {
			user, err := e.userService.Reconcile(e.ctx, identity("ext_plain", ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RolePlayer))
		})

		It("retorna o usuário existente sem sobrescrever o papel", func() {
			first, err := e.userService.Reconcile(e.ctx, identity("ext_same", "player"))
			Expect(err).NotTo(HaveOccurred())

			second, err := e.userService.Reconcile(e.ctx, identity("ext_same", "coach"))
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.Role).To(Equal(entities.RolePlayer))
		})

		It("retorna o vencedor quando o primeiro contato é concorrente", func() {
			winner, err := e.userService.Reconcile(e.ctx, identity("ext_race", "coach"))
			Expect(err).NotTo(HaveOccurred())

			stale := &staleUserRepository{UserRepository: e.users, misses: 1}
			racing := services.NewUserService(stale, e.playerRepo, e.coachRepo, logging.Nop())

			user, err := racing.Reconcile(e.ctx, identity("ext_race", "player"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(winner.ID))
			Expect(user.Role).To(Equal(entities.RoleCoach))
			Expect(stale.lookups).To(Equal(2))

			var count int64
			Expect(e.db.Table("users").Where("external_id = ?", "ext_race").Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("exige email no primeiro contato", func() {
			id := identity("ext_noemail", "player")
			id.Email = ""

			_, err := e.userService.Reconcile(e.ctx, id)
			Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())

			found, err := e.users.FindByExternalID(e.ctx, "ext_noemail")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("rejeita identidade ausente", func() {
			_, err := e.userService.Reconcile(e.ctx, nil)
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
		})
	})

	Describe("ApplyIdentityUpdate", func() {
		It("atualiza email e nomes", func() {
			_, err := e.userService.Reconcile(e.ctx, identity("ext_upd", "player"))
			Expect(err).NotTo(HaveOccurred())

			user, err := e.userService.ApplyIdentityUpdate(e.ctx, ports.Identity{
				ExternalID: "ext_upd",
				Email:      "New@Example.com",
				FirstName:  "New",
				LastName:   "Name",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("new@example.com"))
			Expect(user.FullName()).To(Equal("New Name"))
		})

		It("troca o papel enquanto não houver perfil", func() {
			_, err := e.userService.Reconcile(e.ctx, identity("ext_switch", "player"))
			Expect(err).NotTo(HaveOccurred())

			user, err := e.userService.ApplyIdentityUpdate(e.ctx, *identity("ext_switch", "coach"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleCoach))
		})

		It("mantém o papel quando já existe perfil", func() {
			e.signUpPlayer("ext_locked")

			user, err := e.userService.ApplyIdentityUpdate(e.ctx, *identity("ext_locked", "coach"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RolePlayer))
		})

		It("cria o usuário quando ainda não existe", func() {
			user, err := e.userService.ApplyIdentityUpdate(e.ctx, *identity("ext_late", "coach"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleCoach))
		})
	})
})

var _ = Describe("AuthGuard", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("RequireUser sem identidade retorna Unauthenticated", func() {
		_, err := e.guard.RequireUser(e.ctx, nil)
		Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
	})

	It("RequirePlayer sem perfil retorna ProfileNotFound", func() {
		_, err := e.guard.RequirePlayer(e.ctx, identity("ext_new", "player"))
		Expect(errors.Is(err, domainerrors.ErrProfileNotFound)).To(BeTrue())
		Expect(errors.Is(err, domainerrors.ErrForbidden)).To(BeFalse())
	})

	It("RequirePlayer com papel coach retorna ProfileNotFound", func() {
		e.signUpCoach("ext_c")

		_, err := e.guard.RequirePlayer(e.ctx, identity("ext_c", "coach"))
		Expect(errors.Is(err, domainerrors.ErrProfileNotFound)).To(BeTrue())
	})

	It("RequirePlayer ignora perfil com soft delete", func() {
		auth, player := e.signUpPlayer("ext_gone")
		Expect(e.players.Delete(e.ctx, auth, player.ID)).To(Succeed())

		_, err := e.guard.RequirePlayer(e.ctx, auth.Identity)
		Expect(errors.Is(err, domainerrors.ErrProfileNotFound)).To(BeTrue())
	})

	It("RequireCoach carrega o perfil do técnico", func() {
		auth := e.signUpCoach("ext_coach")
		Expect(auth.Coach).NotTo(BeNil())
		Expect(auth.Coach.UserID).To(Equal(auth.User.ID))
		Expect(auth.OnboardingRequired()).To(BeFalse())
	})

	It("RequireAdmin recusa quem não é admin", func() {
		_, err := e.guard.RequireAdmin(e.ctx, identity("ext_p", "player"))
		Expect(err).To(MatchError(domainerrors.ErrForbidden))

		auth, err := e.guard.RequireAdmin(e.ctx, identity("ext_admin", "admin"))
		Expect(err).NotTo(HaveOccurred())
		Expect(auth.User.IsAdmin()).To(BeTrue())
	})

	It("LoadProfile indica onboarding pendente", func() {
		auth, err := e.guard.RequireUser(e.ctx, identity("ext_onb", "coach"))
		Expect(err).NotTo(HaveOccurred())
		Expect(e.guard.LoadProfile(e.ctx, auth)).To(Succeed())
		Expect(auth.OnboardingRequired()).To(BeTrue())
	})
})
