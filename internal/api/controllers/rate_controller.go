package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripcost/internal/models/request_models"
	"tripcost/internal/services"
	"tripcost/pkg/utils"
)

type RateController struct {
	rateService services.RateServiceInterface
}

func NewRateController(rateService services.RateServiceInterface) *RateController {
	return &RateController{
		rateService: rateService,
	}
}

func (ctl *RateController) ListRates(c *gin.Context) {
	rates, err := ctl.rateService.ListRates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rates, "Rates fetched successfully")
}

func (ctl *RateController) UpsertRate(c *gin.Context) {
	var req request_models.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.rateService.UpsertRate(req, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Rate saved successfully")
}

func (ctl *RateController) DeleteRate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rate ID")
		return
	}

	if err := ctl.rateService.DeleteRate(id, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Rate deleted successfully")
}

func (ctl *RateController) GetMarkup(c *gin.Context) {
	settings, err := ctl.rateService.GetMarkup(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Markup fetched successfully")
}

func (ctl *RateController) UpdateMarkup(c *gin.Context) {
	var req request_models.UpdateMarkupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.rateService.UpdateMarkup(req, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Markup updated successfully")
}
