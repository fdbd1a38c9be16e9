package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"tripcost/internal/models/db_models"
	"tripcost/internal/models/request_models"
	"tripcost/internal/models/response_models"
	"tripcost/internal/pricing"
	"tripcost/internal/repositories"
	"tripcost/pkg/utils"
)

type CatalogServiceInterface interface {
	GetEntryById(id string, ctx context.Context) (response_models.CatalogEntryResponse, error)
	ListEntries(ctx context.Context, category string, page, pageSize int) ([]response_models.CatalogEntryResponse, error)
	CreateEntry(request request_models.CreateCatalogEntryRequest, ctx context.Context) (uuid.UUID, error)
	UpdateEntry(request request_models.UpdateCatalogEntryRequest, ctx context.Context) error
	DeleteEntry(id uuid.UUID, ctx context.Context) error
}

type CatalogService struct {
	catalogRepository repositories.CatalogRepository
}

func NewCatalogService(catalogRepository repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{
		catalogRepository: catalogRepository,
	}
}

// validatePayload rejects a payload that does not decode as the
// category's variant. Decoding goes through the same code path the
// pricing snapshot uses, so anything accepted here will price.
func validatePayload(category string, payload json.RawMessage) error {
	if !pricing.Category(category).Valid() {
		return utils.ErrInvalidCategory
	}

	probe := db_models.CatalogEntry{
		Category: category,
		Currency: "USD",
		Payload:  datatypes.JSON(payload),
	}
	if _, err := probe.ToPricingEntry(); err != nil {
		log.Printf("Rejecting catalog payload: %v", err)
		return utils.ErrInvalidPayload
	}
	return nil
}

func toEntryResponse(entry *db_models.CatalogEntry) response_models.CatalogEntryResponse {
	return response_models.CatalogEntryResponse{
		ID:       entry.ID.String(),
		Name:     entry.Name,
		Category: entry.Category,
		Currency: entry.Currency,
		Unit:     entry.Unit,
		Notes:    entry.Notes,
		Payload:  entry.Payload,
	}
}

func (s *CatalogService) GetEntryById(id string, ctx context.Context) (response_models.CatalogEntryResponse, error) {
	entry, err := s.catalogRepository.GetByID(ctx, id)
	if err != nil {
		return response_models.CatalogEntryResponse{}, utils.ErrDatabaseError
	}
	if entry == nil {
		return response_models.CatalogEntryResponse{}, utils.ErrEntryNotFound
	}
	return toEntryResponse(entry), nil
}

func (s *CatalogService) ListEntries(ctx context.Context, category string, page, pageSize int) ([]response_models.CatalogEntryResponse, error) {
	var (
		entries []db_models.CatalogEntry
		err     error
	)
	if category == "" {
		entries, err = s.catalogRepository.List(ctx, page, pageSize)
	} else {
		if !pricing.Category(category).Valid() {
			return nil, utils.ErrInvalidCategory
		}
		entries, err = s.catalogRepository.ListByCategory(ctx, category, page, pageSize)
	}
	if err != nil {
		log.Printf("Error listing catalog entries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out, nil
}

func (s *CatalogService) CreateEntry(request request_models.CreateCatalogEntryRequest, ctx context.Context) (uuid.UUID, error) {
	if err := validatePayload(request.Category, request.Payload); err != nil {
		return uuid.Nil, err
	}

	newEntry := &db_models.CatalogEntry{
		Name:     request.Name,
		Category: request.Category,
		Currency: request.Currency,
		Unit:     request.Unit,
		Notes:    request.Notes,
		Payload:  datatypes.JSON(request.Payload),
	}

	id, err := s.catalogRepository.CreateEntry(ctx, newEntry)
	if err != nil {
		log.Printf("Error creating catalog entry: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *CatalogService) UpdateEntry(request request_models.UpdateCatalogEntryRequest, ctx context.Context) error {
	existing, err := s.catalogRepository.GetByID(ctx, request.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEntryNotFound
	}

	if err := validatePayload(request.Category, request.Payload); err != nil {
		return err
	}

	existing.Name = request.Name
	existing.Category = request.Category
	existing.Currency = request.Currency
	existing.Unit = request.Unit
	existing.Notes = request.Notes
	existing.Payload = datatypes.JSON(request.Payload)

	if err := s.catalogRepository.UpdateEntry(ctx, existing); err != nil {
		log.Printf("Error updating catalog entry: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) DeleteEntry(id uuid.UUID, ctx context.Context) error {
	existing, err := s.catalogRepository.GetByID(ctx, id.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEntryNotFound
	}

	if err := s.catalogRepository.DeleteEntry(ctx, id); err != nil {
		log.Printf("Error deleting catalog entry: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
