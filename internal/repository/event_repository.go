package repository

import (
	"context"

	"github.com/sefazor/geradores-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return translate(r.db.WithContext(ctx).Create(event).Error, "create event", "id_gerador", event.GeneratorID)
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, translate(err, "get event", "id", id)
	}
	return &event, nil
}

func (r *EventRepository) List(ctx context.Context, offset, limit int) ([]models.Event, error) {
	events := []models.Event{}
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&events).Error
	return events, translate(err, "list events")
}

func (r *EventRepository) ListByGenerator(ctx context.Context, generatorID uint, offset, limit int) ([]models.Event, error) {
	events := []models.Event{}
	err := r.db.WithContext(ctx).
		Where("id_gerador = ?", generatorID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&events).Error
	return events, translate(err, "list events by generator", "id_gerador", generatorID)
}

func (r *EventRepository) CountByGenerator(ctx context.Context, generatorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Where("id_gerador = ?", generatorID).Count(&count).Error
	return count, translate(err, "count events by generator", "id_gerador", generatorID)
}

// Update writes only the given columns in a single statement.
func (r *EventRepository) Update(ctx context.Context, event *models.Event, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(event).Select(columns).Updates(event)
	if result.Error != nil {
		return translate(result.Error, "update event", "id", event.ID)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return false, translate(result.Error, "delete event", "id", id)
	}
	return result.RowsAffected > 0, nil
}
