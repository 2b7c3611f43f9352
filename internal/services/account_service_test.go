package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/infrastructure/logging"
	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/recruit-backend/internal/services"
)

// failingNoteRepository falha na remoção das anotações do autor
type failingNoteRepository struct {
	repositories.NoteRepository
}

func (failingNoteRepository) DeleteByAuthor(context.Context, string) (int64, error) {
	return 0, errBoom
}

var _ = Describe("AccountService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("usuário desconhecido é sucesso sem efeito", func() {
		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_ghost")).To(Succeed())
	})

	It("remove atleta, favoritos e anotações que apontam para ele", func() {
		coach := e.signUpCoach("ext_coach")
		playerAuth, player := e.signUpPlayer("ext_player")
		_, err := e.players.UploadPhoto(e.ctx, playerAuth, player.ID, upload("me.png"))
		Expect(err).NotTo(HaveOccurred())

		_, err = e.coaches.SavePlayer(e.ctx, coach, player.ID)
		Expect(err).NotTo(HaveOccurred())
		_, err = e.notes.Create(e.ctx, coach, player.ID, "watch list")
		Expect(err).NotTo(HaveOccurred())

		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_player")).To(Succeed())

		user, err := e.users.FindByExternalID(e.ctx, "ext_player")
		Expect(err).NotTo(HaveOccurred())
		Expect(user).To(BeNil())

		profiles, err := e.playerRepo.FindAnyByUserID(e.ctx, playerAuth.User.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(profiles).To(BeEmpty())

		page, err := e.coaches.ListSaved(e.ctx, coach, repositories.Pagination{})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.TotalDocs).To(BeZero())

		notes, err := e.noteRepo.ListByAuthorAndPlayer(e.ctx, coach.User.ID, player.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(notes).To(BeEmpty())

		Expect(e.storage.objects).To(BeEmpty())
	})

	It("remove perfis com soft delete", func() {
		playerAuth, player := e.signUpPlayer("ext_soft")
		Expect(e.players.Delete(e.ctx, playerAuth, player.ID)).To(Succeed())

		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_soft")).To(Succeed())

		profiles, err := e.playerRepo.FindAnyByUserID(e.ctx, playerAuth.User.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(profiles).To(BeEmpty())
	})

	It("remove técnico, seus favoritos e suas anotações", func() {
		coach := e.signUpCoach("ext_coach")
		_, player := e.signUpPlayer("ext_player")
		_, err := e.coaches.SavePlayer(e.ctx, coach, player.ID)
		Expect(err).NotTo(HaveOccurred())
		_, err = e.notes.Create(e.ctx, coach, player.ID, "note")
		Expect(err).NotTo(HaveOccurred())

		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_coach")).To(Succeed())

		found, err := e.coachRepo.FindByID(e.ctx, coach.Coach.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeNil())

		notes, err := e.noteRepo.ListByAuthorAndPlayer(e.ctx, coach.User.ID, player.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(notes).To(BeEmpty())

		stillThere, err := e.playerRepo.FindByID(e.ctx, player.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stillThere).NotTo(BeNil())

		program, err := e.programs.Get(e.ctx, coach.Coach.ProgramID)
		Expect(err).NotTo(HaveOccurred())
		Expect(program.HasCoach).To(BeFalse())
	})

	It("falha no storage aborta sem remover linhas", func() {
		playerAuth, player := e.signUpPlayer("ext_stuck")
		_, err := e.players.UploadPhoto(e.ctx, playerAuth, player.ID, upload("me.png"))
		Expect(err).NotTo(HaveOccurred())

		e.storage.deleteErr = errBoom
		err = e.accounts.DeleteByExternalID(e.ctx, "ext_stuck")
		Expect(errors.Is(err, domainerrors.ErrUpstream)).To(BeTrue())

		user, err := e.users.FindByExternalID(e.ctx, "ext_stuck")
		Expect(err).NotTo(HaveOccurred())
		Expect(user).NotTo(BeNil())

		e.storage.deleteErr = nil
		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_stuck")).To(Succeed())
	})

	It("falha na transação preserva as linhas e a reentrega conclui a exclusão", func() {
		playerAuth, player := e.signUpPlayer("ext_rollback")
		_, err := e.players.UploadPhoto(e.ctx, playerAuth, player.ID, upload("me.png"))
		Expect(err).NotTo(HaveOccurred())

		broken := services.NewAccountService(
			postgres.NewUnitOfWork(e.db),
			e.users, e.playerRepo, e.coachRepo, e.savedRepo, failingNoteRepository{e.noteRepo},
			e.storage, logging.Nop(),
		)
		Expect(broken.DeleteByExternalID(e.ctx, "ext_rollback")).To(MatchError(errBoom))

		Expect(e.storage.objects).To(BeEmpty())
		profiles, err := e.playerRepo.FindAnyByUserID(e.ctx, playerAuth.User.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(profiles).To(HaveLen(1))

		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_rollback")).To(Succeed())

		user, err := e.users.FindByExternalID(e.ctx, "ext_rollback")
		Expect(err).NotTo(HaveOccurred())
		Expect(user).To(BeNil())
		profiles, err = e.playerRepo.FindAnyByUserID(e.ctx, playerAuth.User.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(profiles).To(BeEmpty())
	})

	It("reentrega após sucesso continua sucesso", func() {
		e.signUpPlayer("ext_twice")

		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_twice")).To(Succeed())
		Expect(e.accounts.DeleteByExternalID(e.ctx, "ext_twice")).To(Succeed())
	})
})

var _ = Describe("IdentityWebhookService", func() {
	var (
		e        *env
		verifier *fakeVerifier
		webhooks *services.IdentityWebhookService
		signed   map[string][]string
	)

	BeforeEach(func() {
		e = newEnv()
		verifier = &fakeVerifier{}
		webhooks = services.NewIdentityWebhookService(verifier, e.userService, e.accounts, logging.Nop())
		signed = map[string][]string{"Svix-Signature": {"valid"}}
	})

	It("assinatura inválida não tem efeito", func() {
		verifier.event = &ports.IdentityEvent{Type: ports.IdentityUserCreated, Identity: *identity("ext_bad", "player")}

		err := webhooks.Handle(e.ctx, []byte("{}"), map[string][]string{"Svix-Signature": {"forged"}})
		Expect(errors.Is(err, domainerrors.ErrInvalidWebhook)).To(BeTrue())

		user, err := e.users.FindByExternalID(e.ctx, "ext_bad")
		Expect(err).NotTo(HaveOccurred())
		Expect(user).To(BeNil())
	})

	It("user.created cria o usuário", func() {
		verifier.event = &ports.IdentityEvent{Type: ports.IdentityUserCreated, Identity: *identity("ext_new", "coach")}

		Expect(webhooks.Handle(e.ctx, nil, signed)).To(Succeed())
		Expect(webhooks.Handle(e.ctx, nil, signed)).To(Succeed())

		user, err := e.users.FindByExternalID(e.ctx, "ext_new")
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Role).To(BeEquivalentTo("coach"))
	})

	It("user.deleted executa a cascata e é idempotente", func() {
		e.signUpPlayer("ext_bye")
		verifier.event = &ports.IdentityEvent{Type: ports.IdentityUserDeleted, Identity: ports.Identity{ExternalID: "ext_bye"}}

		Expect(webhooks.Handle(e.ctx, nil, signed)).To(Succeed())
		Expect(webhooks.Handle(e.ctx, nil, signed)).To(Succeed())

		user, err := e.users.FindByExternalID(e.ctx, "ext_bye")
		Expect(err).NotTo(HaveOccurred())
		Expect(user).To(BeNil())
	})

	It("tipo desconhecido é ignorado", func() {
		verifier.event = &ports.IdentityEvent{Type: "session.created", Identity: ports.Identity{ExternalID: "ext_x"}}
		Expect(webhooks.Handle(e.ctx, nil, signed)).To(Succeed())
	})
})
