package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/repository"
	"go.uber.org/zap"
)

type GeneratorService struct {
	generatorRepo GeneratorStore
	eventRepo     EventStore
	log           *zap.Logger
}

func NewGeneratorService(generatorRepo GeneratorStore, eventRepo EventStore, log *zap.Logger) *GeneratorService {
	return &GeneratorService{
		generatorRepo: generatorRepo,
		eventRepo:     eventRepo,
		log:           log,
	}
}

func (s *GeneratorService) Create(ctx context.Context, req models.CreateGeneratorRequest) (*models.Generator, error) {
	generator := &models.Generator{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := s.generatorRepo.Create(ctx, generator); err != nil {
		return nil, err
	}
	return generator, nil
}

func (s *GeneratorService) Get(ctx context.Context, id uint) (*models.Generator, error) {
	generator, err := s.generatorRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return generator, err
}

func (s *GeneratorService) List(ctx context.Context, page models.Page) ([]models.Generator, error) {
	page = page.Normalize()
	return s.generatorRepo.List(ctx, page.Offset, page.Limit)
}

// Update applies only the fields present in req.
func (s *GeneratorService) Update(ctx context.Context, id uint, req models.UpdateGeneratorRequest) (*models.Generator, error) {
	generator, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	columns := req.Apply(generator)
	if err := s.generatorRepo.Update(ctx, generator, columns); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return generator, nil
}

// Delete removes the generator and reports whether it existed. Generators
// still referenced by events are kept and ErrGeneratorInUse is returned.
func (s *GeneratorService) Delete(ctx context.Context, id uint) (bool, error) {
	count, err := s.eventRepo.CountByGenerator(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, ErrGeneratorInUse
	}

	deleted, err := s.generatorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return false, ErrGeneratorInUse
		}
		return false, err
	}
	if deleted {
		s.log.Info("generator deleted", zap.Uint("id_gerador", id))
	}
	return deleted, nil
}

// ListEvents returns the events that reference the generator.
func (s *GeneratorService) ListEvents(ctx context.Context, id uint, page models.Page) ([]models.Event, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	page = page.Normalize()
	return s.eventRepo.ListByGenerator(ctx, id, page.Offset, page.Limit)
}
