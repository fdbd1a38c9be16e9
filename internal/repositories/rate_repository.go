package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripcost/internal/models/db_models"
	"tripcost/internal/pricing"
)

type RateRepository interface {
	Upsert(ctx context.Context, rate *db_models.ExchangeRate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]db_models.ExchangeRate, error)

	GetSettings(ctx context.Context) (*db_models.RateSettings, error)
	UpdateMarkup(ctx context.Context, markupPercent float64) error

	// Snapshot returns the rate table plus the global markup as one
	// consistent read for a single pricing run.
	Snapshot(ctx context.Context) (pricing.RateTable, float64, error)
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Upsert(ctx context.Context, rate *db_models.ExchangeRate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_currency"}, {Name: "to_currency"}},
			DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
		}).
		Create(rate).Error
}

func (r *rateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.ExchangeRate{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *rateRepository) List(ctx context.Context) ([]db_models.ExchangeRate, error) {
	var rates []db_models.ExchangeRate
	if err := r.db.WithContext(ctx).Order("from_currency, to_currency").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *rateRepository) GetSettings(ctx context.Context) (*db_models.RateSettings, error) {
	var settings db_models.RateSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *rateRepository) UpdateMarkup(ctx context.Context, markupPercent float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings db_models.RateSettings
		err := tx.First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings.MarkupPercent = markupPercent
			return tx.Create(&settings).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&settings).Update("markup_percent", markupPercent).Error
	})
}

func (r *rateRepository) Snapshot(ctx context.Context) (pricing.RateTable, float64, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return pricing.RateTable{}, 0, err
	}

	rates := make([]pricing.ExchangeRate, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, pricing.ExchangeRate{
			From: row.FromCurrency,
			To:   row.ToCurrency,
			Rate: row.Rate,
		})
	}

	settings, err := r.GetSettings(ctx)
	if err != nil {
		return pricing.RateTable{}, 0, err
	}
	markup := 0.0
	if settings != nil {
		markup = settings.MarkupPercent
	}

	return pricing.NewRateTable(rates), markup, nil
}
