package service

import (
	"context"
	"errors"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/repository"
	"go.uber.org/zap"
)

type EventService struct {
	eventRepo     EventStore
	generatorRepo GeneratorStore
	guard         *IntegrityGuard
	log           *zap.Logger
}

func NewEventService(eventRepo EventStore, generatorRepo GeneratorStore, guard *IntegrityGuard, log *zap.Logger) *EventService {
	return &EventService{
		eventRepo:     eventRepo,
		generatorRepo: generatorRepo,
		guard:         guard,
		log:           log,
	}
}

func (s *EventService) Create(ctx context.Context, req models.CreateEventRequest) (*models.EventResponse, error) {
	generator, err := s.guard.EnsureGeneratorExists(ctx, req.GeneratorID)
	if err != nil {
		return nil, err
	}

	event := req.ToEvent()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrGeneratorNotFound
		}
		return nil, err
	}

	return &models.EventResponse{Event: *event, Generator: generator}, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	generator, err := s.generatorRepo.GetByID(ctx, event.GeneratorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &models.EventResponse{Event: *event, Generator: generator}, nil
}

func (s *EventService) List(ctx context.Context, page models.Page) ([]models.EventResponse, error) {
	page = page.Normalize()
	events, err := s.eventRepo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}
	return s.withGenerators(ctx, events)
}

// Update applies only the fields present in req. The generator reference is
// re-checked only when req changes it.
func (s *EventService) Update(ctx context.Context, id uint, req models.UpdateEventRequest) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var generator *models.Generator
	if req.GeneratorID != nil {
		if generator, err = s.guard.EnsureGeneratorExists(ctx, *req.GeneratorID); err != nil {
			return nil, err
		}
	}

	columns := req.Apply(event)
	if err := s.eventRepo.Update(ctx, event, columns); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrGeneratorNotFound
		}
		return nil, err
	}

	if generator == nil {
		generator, err = s.generatorRepo.GetByID(ctx, event.GeneratorID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return &models.EventResponse{Event: *event, Generator: generator}, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("event deleted", zap.Uint("id", id))
	}
	return deleted, nil
}

// withGenerators resolves each event's generator with one batched query.
func (s *EventService) withGenerators(ctx context.Context, events []models.Event) ([]models.EventResponse, error) {
	seen := make(map[uint]bool, len(events))
	ids := make([]uint, 0, len(events))
	for _, e := range events {
		if !seen[e.GeneratorID] {
			seen[e.GeneratorID] = true
			ids = append(ids, e.GeneratorID)
		}
	}

	generators, err := s.generatorRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Generator, len(generators))
	for i := range generators {
		byID[generators[i].ID] = &generators[i]
	}

	out := make([]models.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, models.EventResponse{Event: e, Generator: byID[e.GeneratorID]})
	}
	return out, nil
}
