package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"tripcost/internal/models/db_models"
	"tripcost/internal/models/request_models"
	"tripcost/internal/models/response_models"
	"tripcost/internal/repositories"
	"tripcost/pkg/utils"
)

type RateServiceInterface interface {
	ListRates(ctx context.Context) ([]response_models.RateResponse, error)
	UpsertRate(request request_models.UpsertRateRequest, ctx context.Context) error
	DeleteRate(id uuid.UUID, ctx context.Context) error
	GetMarkup(ctx context.Context) (response_models.RateSettingsResponse, error)
	UpdateMarkup(request request_models.UpdateMarkupRequest, ctx context.Context) error
}

type RateService struct {
	rateRepository repositories.RateRepository
}

func NewRateService(rateRepository repositories.RateRepository) RateServiceInterface {
	return &RateService{
		rateRepository: rateRepository,
	}
}

func (s *RateService) ListRates(ctx context.Context) ([]response_models.RateResponse, error) {
	rates, err := s.rateRepository.List(ctx)
	if err != nil {
		log.Printf("Error listing rates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, response_models.RateResponse{
			ID:           r.ID.String(),
			FromCurrency: r.FromCurrency,
			ToCurrency:   r.ToCurrency,
			Rate:         r.Rate,
		})
	}
	return out, nil
}

// UpsertRate is the data-entry boundary the engine relies on: identical
// currencies and non-positive rates never reach the rate table.
func (s *RateService) UpsertRate(request request_models.UpsertRateRequest, ctx context.Context) error {
	from := strings.ToUpper(request.FromCurrency)
	to := strings.ToUpper(request.ToCurrency)

	if from == to || request.Rate <= 0 {
		return utils.ErrInvalidRate
	}

	rate := &db_models.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         request.Rate,
	}
	if err := s.rateRepository.Upsert(ctx, rate); err != nil {
		log.Printf("Error upserting rate: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RateService) DeleteRate(id uuid.UUID, ctx context.Context) error {
	if err := s.rateRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting rate: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RateService) GetMarkup(ctx context.Context) (response_models.RateSettingsResponse, error) {
	settings, err := s.rateRepository.GetSettings(ctx)
	if err != nil {
		return response_models.RateSettingsResponse{}, utils.ErrDatabaseError
	}
	if settings == nil {
		return response_models.RateSettingsResponse{}, nil
	}
	return response_models.RateSettingsResponse{MarkupPercent: settings.MarkupPercent}, nil
}

func (s *RateService) UpdateMarkup(request request_models.UpdateMarkupRequest, ctx context.Context) error {
	if request.MarkupPercent < 0 {
		return utils.ErrInvalidInput
	}
	if err := s.rateRepository.UpdateMarkup(ctx, request.MarkupPercent); err != nil {
		log.Printf("Error updating markup: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
