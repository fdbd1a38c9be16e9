package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripcost/internal/models/db_models"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]db_models.Itinerary, error)

	GetWithDetails(ctx context.Context, id string) (*db_models.Itinerary, error)
	AddItem(ctx context.Context, dayID uuid.UUID, item *db_models.ItineraryItem) (uuid.UUID, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	UpdateItem(ctx context.Context, item *db_models.ItineraryItem) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *itineraryRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Travelers").
		Preload("Days").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetWithDetails(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Travelers").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number")
		}).
		Preload("Days.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_items.position")
		}).
		First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) AddItem(ctx context.Context, dayID uuid.UUID, item *db_models.ItineraryItem) (uuid.UUID, error) {
	var day db_models.ItineraryDay
	if err := r.db.WithContext(ctx).First(&day, "id = ?", dayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, gorm.ErrRecordNotFound
		}
		return uuid.Nil, err
	}

	item.DayID = dayID
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return uuid.Nil, err
	}
	return item.ID, nil
}

func (r *itineraryRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.ItineraryItem{}, "id = ?", itemID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *itineraryRepository) UpdateItem(ctx context.Context, item *db_models.ItineraryItem) error {
	result := r.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		return fmt.Errorf("failed to update itinerary item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
