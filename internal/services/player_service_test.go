package services_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/services"
)

var _ = Describe("PlayerService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Create", func() {
		It("usa os nomes do usuário como padrão", func() {
			_, player := e.signUpPlayer("ext_p1")
			Expect(player.FirstName).To(Equal("Test"))
			Expect(player.LastName).To(Equal("EXT_P1"))
			Expect(player.GraduationYear).To(Equal(2026))
		})

		It("exige ano de formatura", func() {
			auth, err := e.guard.RequireUser(e.ctx, identity("ext_p2", "player"))
			Expect(err).NotTo(HaveOccurred())

			_, err = e.players.Create(e.ctx, auth, entities.PlayerPatch{})
			Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
		})

		It("recusa um segundo perfil ativo", func() {
			auth, _ := e.signUpPlayer("ext_p3")

			_, err := e.players.Create(e.ctx, auth, entities.PlayerPatch{GraduationYear: intPtr(2027)})
			Expect(errors.Is(err, domainerrors.ErrConflict)).To(BeTrue())
			Expect(errors.Is(err, domainerrors.ErrProfileExists)).To(BeTrue())
		})

		It("recusa usuário com papel coach", func() {
			auth, err := e.guard.RequireUser(e.ctx, identity("ext_c1", "coach"))
			Expect(err).NotTo(HaveOccurred())

			_, err = e.players.Create(e.ctx, auth, entities.PlayerPatch{GraduationYear: intPtr(2026)})
			Expect(errors.Is(err, domainerrors.ErrForbidden)).To(BeTrue())
			Expect(errors.Is(err, domainerrors.ErrWrongRole)).To(BeTrue())
		})

		It("restaura o perfil com soft delete mantendo o ID", func() {
			auth, player := e.signUpPlayer("ext_p4")
			Expect(e.players.Delete(e.ctx, auth, player.ID)).To(Succeed())

			restored, err := e.players.Create(e.ctx, auth, entities.PlayerPatch{
				GraduationYear: intPtr(2028),
				City:           strPtr("Austin"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.ID).To(Equal(player.ID))
			Expect(restored.GraduationYear).To(Equal(2028))
			Expect(restored.IsDeleted()).To(BeFalse())

			found, err := e.playerRepo.FindByID(e.ctx, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.City).To(Equal("Austin"))
		})
	})

	Describe("Get", func() {
		var player *entities.PlayerProfile

		BeforeEach(func() {
			_, player = e.signUpPlayer("ext_owner")
		})

		It("mostra o contato ao dono", func() {
			owner, err := e.guard.RequireUser(e.ctx, identity("ext_owner", "player"))
			Expect(err).NotTo(HaveOccurred())

			found, err := e.players.Get(e.ctx, owner, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Phone).To(Equal("555-0100"))
		})

		It("oculta o contato para outro atleta", func() {
			other, _ := e.signUpPlayer("ext_other")

			found, err := e.players.Get(e.ctx, other, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Phone).To(BeEmpty())
			Expect(found.ContactEmail).To(BeEmpty())
		})

		It("oculta o contato para técnico sem assinatura", func() {
			coach := e.signUpCoach("ext_coach")

			found, err := e.players.Get(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Phone).To(BeEmpty())
		})

		It("mostra o contato para técnico com assinatura ativa", func() {
			coach := e.signUpCoach("ext_paid")
			customerID := "cus_paid"
			coach.User.StripeCustomerID = &customerID
			e.billing.active[customerID] = true

			found, err := e.players.Get(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Phone).To(Equal("555-0100"))
		})

		It("oculta o contato quando a consulta da assinatura falha", func() {
			coach := e.signUpCoach("ext_flaky")
			customerID := "cus_flaky"
			coach.User.StripeCustomerID = &customerID
			e.billing.checkErr = errBoom

			found, err := e.players.Get(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Phone).To(BeEmpty())
		})

		It("retorna NotFound para perfil com soft delete", func() {
			owner, err := e.guard.RequirePlayer(e.ctx, identity("ext_owner", "player"))
			Expect(err).NotTo(HaveOccurred())
			Expect(e.players.Delete(e.ctx, owner, player.ID)).To(Succeed())

			_, err = e.players.Get(e.ctx, owner, player.ID)
			Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("propriedade", func() {
		It("recusa atualização de outro usuário sem alterar o perfil", func() {
			_, victim := e.signUpPlayer("ext_victim")
			attacker, _ := e.signUpPlayer("ext_attacker")

			_, err := e.players.Update(e.ctx, attacker, victim.ID, entities.PlayerPatch{City: strPtr("Hacked")})
			Expect(errors.Is(err, domainerrors.ErrForbidden)).To(BeTrue())
			Expect(errors.Is(err, domainerrors.ErrNotOwner)).To(BeTrue())

			found, err := e.playerRepo.FindByID(e.ctx, victim.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.City).NotTo(Equal("Hacked"))
		})

		It("recusa exclusão de outro usuário", func() {
			_, victim := e.signUpPlayer("ext_v2")
			attacker, _ := e.signUpPlayer("ext_a2")

			err := e.players.Delete(e.ctx, attacker, victim.ID)
			Expect(errors.Is(err, domainerrors.ErrForbidden)).To(BeTrue())

			found, err := e.playerRepo.FindByID(e.ctx, victim.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
		})
	})

	Describe("UploadPhoto", func() {
		It("grava a nova foto e remove a anterior", func() {
			auth, player := e.signUpPlayer("ext_photo")

			first, err := e.players.UploadPhoto(e.ctx, auth, player.ID, upload("a.png"))
			Expect(err).NotTo(HaveOccurred())
			firstURL := *first.PhotoURL

			second, err := e.players.UploadPhoto(e.ctx, auth, player.ID, upload("b.png"))
			Expect(err).NotTo(HaveOccurred())

			Expect(e.storage.objects).To(HaveKey(*second.PhotoURL))
			Expect(e.storage.objects).NotTo(HaveKey(firstURL))
			Expect(e.storage.deleted).To(ConsistOf(firstURL))
		})

		It("recusa tipo de arquivo não suportado", func() {
			auth, player := e.signUpPlayer("ext_gif")
			file := upload("a.gif")
			file.ContentType = "image/gif"

			_, err := e.players.UploadPhoto(e.ctx, auth, player.ID, file)
			Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
			Expect(e.storage.objects).To(BeEmpty())
		})

		It("recusa arquivo acima do limite", func() {
			auth, player := e.signUpPlayer("ext_big")
			file := upload("big.png")
			file.Size = services.MaxImageSize + 1

			_, err := e.players.UploadPhoto(e.ctx, auth, player.ID, file)
			Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
		})

		It("mantém a foto anterior quando o upload falha", func() {
			auth, player := e.signUpPlayer("ext_fail")
			first, err := e.players.UploadPhoto(e.ctx, auth, player.ID, upload("a.png"))
			Expect(err).NotTo(HaveOccurred())

			e.storage.storeErr = errBoom
			_, err = e.players.UploadPhoto(e.ctx, auth, player.ID, upload("b.png"))
			Expect(errors.Is(err, domainerrors.ErrUpstream)).To(BeTrue())

			found, err := e.playerRepo.FindByID(e.ctx, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*found.PhotoURL).To(Equal(*first.PhotoURL))
		})
	})

	Describe("List", func() {
		It("nunca expõe contato", func() {
			e.signUpPlayer("ext_l1")
			e.signUpPlayer("ext_l2")

			page, err := e.players.List(e.ctx, repositories.PlayerFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.TotalDocs).To(Equal(int64(2)))
			for _, p := range page.Docs {
				Expect(p.Phone).To(BeEmpty())
			}
		})

		It("aplica filtros de GPA", func() {
			auth, player := e.signUpPlayer("ext_gpa")
			_, err := e.players.Update(e.ctx, auth, player.ID, entities.PlayerPatch{GPA: floatPtr(3.9)})
			Expect(err).NotTo(HaveOccurred())
			e.signUpPlayer("ext_nogpa")

			page, err := e.players.List(e.ctx, repositories.PlayerFilters{MinGPA: floatPtr(3.5)})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Docs).To(HaveLen(1))
			Expect(page.Docs[0].ID).To(Equal(player.ID))
		})
	})
})
