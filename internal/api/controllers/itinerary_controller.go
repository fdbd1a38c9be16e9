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

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	quoteService     services.QuoteServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	quoteService services.QuoteServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		quoteService:     quoteService,
	}
}

func (ctl *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctl.itineraryService.CreateItinerary(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Itinerary created successfully")
}

func (ctl *ItineraryController) GetItineraryById(c *gin.Context) {
	itineraryId := c.Param("id")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := ctl.itineraryService.GetItineraryById(c.Request.Context(), itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

func (ctl *ItineraryController) ListItineraries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

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

	itineraries, err := ctl.itineraryService.ListItineraries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func (ctl *ItineraryController) DeleteItinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	if err := ctl.itineraryService.DeleteItinerary(id, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

func (ctl *ItineraryController) AddItemToDay(c *gin.Context) {
	dayId, err := uuid.Parse(c.Param("dayId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day ID")
		return
	}

	var req request_models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctl.itineraryService.AddItemToDay(c.Request.Context(), dayId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Item added successfully")
}

func (ctl *ItineraryController) RemoveItem(c *gin.Context) {
	itemId, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := ctl.itineraryService.RemoveItem(c.Request.Context(), itemId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item removed successfully")
}

// GetQuote prices the whole itinerary. Items that cannot be priced come
// back flagged on their own line; the totals cover the rest.
func (ctl *ItineraryController) GetQuote(c *gin.Context) {
	itineraryId := c.Param("id")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	quote, err := ctl.quoteService.QuoteItinerary(c.Request.Context(), itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quote, "Quote computed successfully")
}
