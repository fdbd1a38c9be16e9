package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripcost/internal/models/request_models"
	"tripcost/internal/services"
	"tripcost/pkg/utils"
)

type CatalogController struct {
	catalogService      services.CatalogServiceInterface
	availabilityService services.AvailabilityServiceInterface
}

func NewCatalogController(
	catalogService services.CatalogServiceInterface,
	availabilityService services.AvailabilityServiceInterface,
) *CatalogController {
	return &CatalogController{
		catalogService:      catalogService,
		availabilityService: availabilityService,
	}
}

func (ctl *CatalogController) GetEntryById(c *gin.Context) {
	entryId := c.Param("id")
	if entryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	entry, err := ctl.catalogService.GetEntryById(entryId, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Catalog entry fetched successfully")
}

func (ctl *CatalogController) ListEntries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	entries, err := ctl.catalogService.ListEntries(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Catalog entries fetched successfully")
}

func (ctl *CatalogController) CreateEntry(c *gin.Context) {
	var req request_models.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctl.catalogService.CreateEntry(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Catalog entry created successfully")
}

func (ctl *CatalogController) UpdateEntry(c *gin.Context) {
	var req request_models.UpdateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.catalogService.UpdateEntry(req, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Catalog entry updated successfully")
}

func (ctl *CatalogController) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	if err := ctl.catalogService.DeleteEntry(id, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Catalog entry deleted successfully")
}

// GetMonthAvailability serves the calendar the booking forms render.
// It goes through the pricing engine's own day-status check.
func (ctl *CatalogController) GetMonthAvailability(c *gin.Context) {
	entryId := c.Param("id")
	if entryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month")
		return
	}

	availability, err := ctl.availabilityService.MonthAvailability(
		c.Request.Context(), entryId, c.Query("package"), year, month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, availability, "Availability fetched successfully")
}
