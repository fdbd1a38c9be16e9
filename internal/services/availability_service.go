package services

import (
	"context"
	"time"

	"tripcost/internal/models/response_models"
	"tripcost/internal/repositories"
	"tripcost/pkg/utils"
)

type AvailabilityServiceInterface interface {
	MonthAvailability(ctx context.Context, entryID, packageName string, year, month int) (*response_models.MonthAvailabilityResponse, error)
}

type AvailabilityService struct {
	catalogRepo repositories.CatalogRepository
}

func NewAvailabilityService(catalogRepo repositories.CatalogRepository) AvailabilityServiceInterface {
	return &AvailabilityService{catalogRepo: catalogRepo}
}

// MonthAvailability renders one calendar month through the same
// day-status check the pricing engine runs, so the calendar can never
// show a bookable day the quote would reject.
func (s *AvailabilityService) MonthAvailability(ctx context.Context, entryID, packageName string, year, month int) (*response_models.MonthAvailabilityResponse, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, utils.ErrInvalidInput
	}

	row, err := s.catalogRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrEntryNotFound
	}

	entry, err := row.ToPricingEntry()
	if err != nil {
		return nil, utils.ErrInvalidPayload
	}
	if entry.Activity == nil || len(entry.Activity.Packages) == 0 {
		return nil, utils.ErrInvalidCategory
	}

	pkg := &entry.Activity.Packages[0]
	if packageName != "" {
		pkg = nil
		for i := range entry.Activity.Packages {
			if entry.Activity.Packages[i].Name == packageName {
				pkg = &entry.Activity.Packages[i]
				break
			}
		}
		if pkg == nil {
			return nil, utils.ErrPackageNotFound
		}
	}

	out := &response_models.MonthAvailabilityResponse{
		EntryID: entryID,
		Package: pkg.Name,
		Year:    year,
		Month:   month,
	}

	day := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == time.Month(month) {
		out.Days = append(out.Days, response_models.DayAvailabilityResponse{
			Date:   utils.FormatDate(day),
			Status: pkg.Schedule.StatusOn(day).String(),
		})
		day = day.AddDate(0, 0, 1)
	}
	return out, nil
}
