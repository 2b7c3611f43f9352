package services_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/infrastructure/logging"
	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/dbtest"
	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/recruit-backend/internal/services"
)

var _ = Describe("ProgramService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	It("normaliza a divisão", func() {
		program, err := e.programs.Create(e.ctx, &entities.Program{Name: "Tech", Division: "naia"})
		Expect(err).NotTo(HaveOccurred())
		Expect(program.Division).To(Equal(entities.DivisionNAIA))
	})

	It("recusa divisão inválida", func() {
		_, err := e.programs.Create(e.ctx, &entities.Program{Name: "Tech", Division: "D9"})
		Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
	})

	It("não remove programa com técnico vinculado", func() {
		coach := e.signUpCoach("ext_c")

		err := e.programs.Delete(e.ctx, coach.Coach.ProgramID)
		Expect(errors.Is(err, domainerrors.ErrConflict)).To(BeTrue())
		Expect(errors.Is(err, domainerrors.ErrProgramInUse)).To(BeTrue())
	})

	It("remover programa inexistente retorna NotFound", func() {
		err := e.programs.Delete(e.ctx, "missing")
		Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
	})

	It("atualiza campos enviados", func() {
		program, err := e.programs.Create(e.ctx, &entities.Program{Name: "Tech", Division: entities.DivisionD2})
		Expect(err).NotTo(HaveOccurred())

		updated, err := e.programs.Update(e.ctx, program.ID, entities.ProgramPatch{Conference: strPtr("Big Sky")})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Conference).To(Equal("Big Sky"))
		Expect(updated.Division).To(Equal(entities.DivisionD2))
	})
})

var _ = Describe("TournamentService", func() {
	var tournaments *services.TournamentService

	BeforeEach(func() {
		db := dbtest.New(GinkgoT())
		tournaments = services.NewTournamentService(postgres.NewTournamentRepository(db), logging.Nop())
	})

	It("recusa data final antes da inicial", func() {
		start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
		_, err := tournaments.Create(context.Background(), &entities.Tournament{
			Name:      "Summer Showcase",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, -1),
		})
		Expect(errors.Is(err, domainerrors.ErrValidation)).To(BeTrue())
	})

	It("cria, atualiza e remove", func() {
		start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
		created, err := tournaments.Create(context.Background(), &entities.Tournament{Name: "Fall Classic", StartDate: start})
		Expect(err).NotTo(HaveOccurred())

		updated, err := tournaments.Update(context.Background(), created.ID, entities.TournamentPatch{Venue: strPtr("Field 9")})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Venue).To(Equal("Field 9"))

		Expect(tournaments.Delete(context.Background(), created.ID)).To(Succeed())
		_, err = tournaments.Get(context.Background(), created.ID)
		Expect(errors.Is(err, domainerrors.ErrNotFound)).To(BeTrue())
	})
})
