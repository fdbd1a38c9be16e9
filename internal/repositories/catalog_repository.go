package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripcost/internal/models/db_models"
	"tripcost/internal/pricing"
)

type CatalogRepository interface {
	CreateEntry(ctx context.Context, entry *db_models.CatalogEntry) (uuid.UUID, error)
	UpdateEntry(ctx context.Context, entry *db_models.CatalogEntry) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.CatalogEntry, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.CatalogEntry, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.CatalogEntry, error)

	// Snapshot loads the full catalog decoded into the pricing shape.
	// The engine prices against this plain-data copy, never the rows.
	Snapshot(ctx context.Context) (pricing.Catalog, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateEntry(ctx context.Context, entry *db_models.CatalogEntry) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return uuid.Nil, err
	}
	return entry.ID, nil
}

func (r *catalogRepository) UpdateEntry(ctx context.Context, entry *db_models.CatalogEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(entry)
		if result.Error != nil {
			return fmt.Errorf("failed to update catalog entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *catalogRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.CatalogEntry{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*db_models.CatalogEntry, error) {
	var entry db_models.CatalogEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *catalogRepository) List(ctx context.Context, page, pageSize int) ([]db_models.CatalogEntry, error) {
	var entries []db_models.CatalogEntry
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *catalogRepository) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.CatalogEntry, error) {
	var entries []db_models.CatalogEntry
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at").
		Offset(offset).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *catalogRepository) Snapshot(ctx context.Context) (pricing.Catalog, error) {
	var entries []db_models.CatalogEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}

	catalog := make(pricing.Catalog, len(entries))
	for i := range entries {
		entry, err := entries[i].ToPricingEntry()
		if err != nil {
			return nil, err
		}
		catalog[entry.ID] = entry
	}
	return catalog, nil
}
