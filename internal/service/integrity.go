package service

import (
	"context"
	"errors"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/repository"
)

// IntegrityGuard checks that an event's generator reference resolves. The
// evento.id_gerador foreign key backs it up at write time.
type IntegrityGuard struct {
	generatorRepo GeneratorStore
}

func NewIntegrityGuard(generatorRepo GeneratorStore) *IntegrityGuard {
	return &IntegrityGuard{generatorRepo: generatorRepo}
}

func (g *IntegrityGuard) EnsureGeneratorExists(ctx context.Context, id uint) (*models.Generator, error) {
	if id == 0 {
		return nil, ErrGeneratorNotFound
	}
	generator, err := g.generatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGeneratorNotFound
		}
		return nil, err
	}
	return generator, nil
}
