package repository

import (
	"context"

	"github.com/sefazor/geradores-backend/internal/models"
	"gorm.io/gorm"
)

type GeneratorRepository struct {
	db *gorm.DB
}

func NewGeneratorRepository(db *gorm.DB) *GeneratorRepository {
	return &GeneratorRepository{db: db}
}

func (r *GeneratorRepository) Create(ctx context.Context, generator *models.Generator) error {
	return translate(r.db.WithContext(ctx).Create(generator).Error, "create generator")
}

func (r *GeneratorRepository) GetByID(ctx context.Context, id uint) (*models.Generator, error) {
	var generator models.Generator
	if err := r.db.WithContext(ctx).First(&generator, id).Error; err != nil {
		return nil, translate(err, "get generator", "id", id)
	}
	return &generator, nil
}

// GetByIDs returns the generators with the given ids, in id order. Missing
// ids are skipped.
func (r *GeneratorRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Generator, error) {
	generators := []models.Generator{}
	if len(ids) == 0 {
		return generators, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&generators).Error
	return generators, translate(err, "get generators")
}

func (r *GeneratorRepository) List(ctx context.Context, offset, limit int) ([]models.Generator, error) {
	generators := []models.Generator{}
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&generators).Error
	return generators, translate(err, "list generators")
}

// Update writes only the given columns in a single statement.
func (r *GeneratorRepository) Update(ctx context.Context, generator *models.Generator, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(generator).Select(columns).Updates(generator)
	if result.Error != nil {
		return translate(result.Error, "update generator", "id", generator.ID)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GeneratorRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Generator{}, id)
	if result.Error != nil {
		return false, translate(result.Error, "delete generator", "id", id)
	}
	return result.RowsAffected > 0, nil
}
