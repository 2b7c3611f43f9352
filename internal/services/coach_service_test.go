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

var _ = Describe("CoachService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Create", func() {
		It("exige programa", func() {
			auth, err := e.guard.RequireUser(e.ctx, identity("ext_c", "coach"))
			Expect(err).NotTo(HaveOccurred())

			_, err = e.coaches.Create(e.ctx, auth, entities.CoachPatch{})
			Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
		})

		It("retorna NotFound para programa inexistente", func() {
			auth, err := e.guard.RequireUser(e.ctx, identity("ext_c", "coach"))
			Expect(err).NotTo(HaveOccurred())

			_, err = e.coaches.Create(e.ctx, auth, entities.CoachPatch{ProgramID: strPtr("missing")})
			Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
		})

		It("recusa usuário com papel player", func() {
			auth, err := e.guard.RequireUser(e.ctx, identity("ext_p", "player"))
			Expect(err).NotTo(HaveOccurred())

			_, err = e.coaches.Create(e.ctx, auth, entities.CoachPatch{ProgramID: strPtr("any")})
			Expect(errors.Is(err, domainerrors.ErrWrongRole)).To(BeTrue())
		})

		It("recusa um segundo perfil", func() {
			auth := e.signUpCoach("ext_twice")

			_, err := e.coaches.Create(e.ctx, auth, entities.CoachPatch{ProgramID: &auth.Coach.ProgramID})
			Expect(errors.Is(err, domainerrors.ErrProfileExists)).To(BeTrue())
		})

		It("marca o programa como tendo técnico", func() {
			auth := e.signUpCoach("ext_has")

			program, err := e.programs.Get(e.ctx, auth.Coach.ProgramID)
			Expect(err).NotTo(HaveOccurred())
			Expect(program.HasCoach).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("carrega o programa no retorno", func() {
			auth := e.signUpCoach("ext_u")

			coach, err := e.coaches.Update(e.ctx, auth, auth.Coach.ID, entities.CoachPatch{Title: strPtr("Head Coach")})
			Expect(err).NotTo(HaveOccurred())
			Expect(coach.Title).To(Equal("Head Coach"))
			Expect(coach.Program).NotTo(BeNil())
		})

		It("recusa perfil de outro técnico", func() {
			victim := e.signUpCoach("ext_v")
			attacker := e.signUpCoach("ext_a")

			_, err := e.coaches.Update(e.ctx, attacker, victim.Coach.ID, entities.CoachPatch{Title: strPtr("x")})
			Expect(errors.Is(err, domainerrors.ErrNotOwner)).To(BeTrue())
		})

		It("retorna NotFound ao trocar para programa inexistente", func() {
			auth := e.signUpCoach("ext_move")

			_, err := e.coaches.Update(e.ctx, auth, auth.Coach.ID, entities.CoachPatch{ProgramID: strPtr("missing")})
			Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("favoritos", func() {
		var (
			coach, playerAuth *services.AuthContext
			player            *entities.PlayerProfile
		)

		BeforeEach(func() {
			coach = e.signUpCoach("ext_scout")
			playerAuth, player = e.signUpPlayer("ext_star")
		})

		It("salva e lista o atleta", func() {
			saved, err := e.coaches.SavePlayer(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Player.ID).To(Equal(player.ID))

			page, err := e.coaches.ListSaved(e.ctx, coach, repositories.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Docs).To(HaveLen(1))
			Expect(page.Docs[0].Player).NotTo(BeNil())
			Expect(page.Docs[0].Player.Phone).To(BeEmpty())
		})

		It("salvar duas vezes retorna Conflict", func() {
			_, err := e.coaches.SavePlayer(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.coaches.SavePlayer(e.ctx, coach, player.ID)
			Expect(errors.Is(err, domainerrors.ErrAlreadySaved)).To(BeTrue())
		})

		It("salvar atleta com soft delete retorna NotFound", func() {
			Expect(e.players.Delete(e.ctx, playerAuth, player.ID)).To(Succeed())

			_, err := e.coaches.SavePlayer(e.ctx, coach, player.ID)
			Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
		})

		It("lista omite atletas com soft delete", func() {
			_, err := e.coaches.SavePlayer(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.players.Delete(e.ctx, playerAuth, player.ID)).To(Succeed())

			page, err := e.coaches.ListSaved(e.ctx, coach, repositories.Pagination{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Docs).To(BeEmpty())
		})

		It("remover atleta não salvo retorna NotFound", func() {
			err := e.coaches.UnsavePlayer(e.ctx, coach, player.ID)
			Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
		})

		It("remove o atleta salvo", func() {
			_, err := e.coaches.SavePlayer(e.ctx, coach, player.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.coaches.UnsavePlayer(e.ctx, coach, player.ID)).To(Succeed())
		})
	})
})

var _ = Describe("NoteService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("lista apenas anotações do próprio autor", func() {
		author := e.signUpCoach("ext_author")
		other := e.signUpCoach("ext_peer")
		_, player := e.signUpPlayer("ext_target")

		_, err := e.notes.Create(e.ctx, author, player.ID, "great arm")
		Expect(err).NotTo(HaveOccurred())
		_, err = e.notes.Create(e.ctx, other, player.ID, "slow feet")
		Expect(err).NotTo(HaveOccurred())

		notes, err := e.notes.ListForPlayer(e.ctx, author, player.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(notes).To(HaveLen(1))
		Expect(notes[0].Body).To(Equal("great arm"))
	})

	It("recusa anotação vazia", func() {
		author := e.signUpCoach("ext_author")
		_, player := e.signUpPlayer("ext_target")

		_, err := e.notes.Create(e.ctx, author, player.ID, "   ")
		Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
	})

	It("recusa edição e exclusão por outro autor", func() {
		author := e.signUpCoach("ext_author")
		other := e.signUpCoach("ext_peer")
		_, player := e.signUpPlayer("ext_target")

		note, err := e.notes.Create(e.ctx, author, player.ID, "original")
		Expect(err).NotTo(HaveOccurred())

		_, err = e.notes.Update(e.ctx, other, note.ID, "changed")
		Expect(errors.Is(err, domainerrors.ErrForbidden)).To(BeTrue())
		Expect(errors.Is(e.notes.Delete(e.ctx, other, note.ID), domainerrors.ErrForbidden)).To(BeTrue())

		found, err := e.noteRepo.FindByID(e.ctx, note.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Body).To(Equal("original"))
	})

	It("atualiza e remove anotação própria", func() {
		author := e.signUpCoach("ext_author")
		_, player := e.signUpPlayer("ext_target")

		note, err := e.notes.Create(e.ctx, author, player.ID, "first")
		Expect(err).NotTo(HaveOccurred())

		updated, err := e.notes.Update(e.ctx, author, note.ID, "second")
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Body).To(Equal("second"))

		Expect(e.notes.Delete(e.ctx, author, note.ID)).To(Succeed())
		_, err = e.notes.Update(e.ctx, author, note.ID, "third")
		Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
	})
})
