package services

import (
	"context"
	"errors"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// ProgramService mantém o catálogo de programas universitários
type ProgramService struct {
	programRepo repositories.ProgramRepository
	coachRepo   repositories.CoachRepository
	logger      ports.Logger
}

// NewProgramService cria um novo ProgramService
func NewProgramService(programRepo repositories.ProgramRepository, coachRepo repositories.CoachRepository, logger ports.Logger) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		coachRepo:   coachRepo,
		logger:      logger,
	}
}

// List lista os programas com filtros e paginação
func (s *ProgramService) List(ctx context.Context, filters repositories.ProgramFilters) (repositories.Page[*entities.Program], error) {
	return s.programRepo.List(ctx, filters)
}

// Get busca um programa pelo ID
func (s *ProgramService) Get(ctx context.Context, id string) (*entities.Program, error) {
	program, err := s.programRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, domainerrors.NewNotFoundError("Program")
	}
	return program, nil
}

// Create cadastra um programa
func (s *ProgramService) Create(ctx context.Context, program *entities.Program) (*entities.Program, error) {
	if division, ok := entities.ParseDivision(string(program.Division)); ok {
		program.Division = division
	}
	if err := program.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("program", err.Error())
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	ports.ForOperation(s.logger, "program", program.ID, "create").Info("program created", "name", program.Name)
	return program, nil
}

// Update aplica o patch a um programa
func (s *ProgramService) Update(ctx context.Context, id string, patch entities.ProgramPatch) (*entities.Program, error) {
	program, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(program)
	if division, ok := entities.ParseDivision(string(program.Division)); ok {
		program.Division = division
	}
	if err := program.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("program", err.Error())
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, notFoundAs(err, "Program")
	}

	ports.ForOperation(s.logger, "program", program.ID, "update").Info("program updated")
	return program, nil
}

// Delete remove um programa sem técnicos vinculados
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	coaches, err := s.coachRepo.CountByProgramID(ctx, id)
	if err != nil {
		return err
	}
	if coaches > 0 {
		return domainerrors.NewConflictError(domainerrors.ErrProgramInUse)
	}

	if err := s.programRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Program")
	}

	ports.ForOperation(s.logger, "program", id, "delete").Info("program deleted")
	return nil
}

// TournamentService mantém o calendário de torneios
type TournamentService struct {
	tournamentRepo repositories.TournamentRepository
	logger         ports.Logger
}

// NewTournamentService cria um novo TournamentService
func NewTournamentService(tournamentRepo repositories.TournamentRepository, logger ports.Logger) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

// List lista os torneios com filtros e paginação
func (s *TournamentService) List(ctx context.Context, filters repositories.TournamentFilters) (repositories.Page[*entities.Tournament], error) {
	return s.tournamentRepo.List(ctx, filters)
}

// Get busca um torneio pelo ID
func (s *TournamentService) Get(ctx context.Context, id string) (*entities.Tournament, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament == nil {
		return nil, domainerrors.NewNotFoundError("Tournament")
	}
	return tournament, nil
}

// Create cadastra um torneio
func (s *TournamentService) Create(ctx context.Context, tournament *entities.Tournament) (*entities.Tournament, error) {
	if err := tournament.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("tournament", err.Error())
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, err
	}

	ports.ForOperation(s.logger, "tournament", tournament.ID, "create").Info("tournament created", "name", tournament.Name)
	return tournament, nil
}

// Update aplica o patch a um torneio
func (s *TournamentService) Update(ctx context.Context, id string, patch entities.TournamentPatch) (*entities.Tournament, error) {
	tournament, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(tournament)
	if err := tournament.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("tournament", err.Error())
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, notFoundAs(err, "Tournament")
	}

	ports.ForOperation(s.logger, "tournament", tournament.ID, "update").Info("tournament updated")
	return tournament, nil
}

// Delete remove um torneio
func (s *TournamentService) Delete(ctx context.Context, id string) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Tournament")
	}

	ports.ForOperation(s.logger, "tournament", id, "delete").Info("tournament deleted")
	return nil
}

// notFoundAs converte o ErrNotFound do repository em erro de domínio
func notFoundAs(err error, resource string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return domainerrors.NewNotFoundError(resource)
	}
	return err
}
