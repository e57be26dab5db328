package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type OpticienController struct {
	authService      services.AuthServiceInterface
	dashboardService services.DashboardServiceInterface
}

func NewOpticienController(authService services.AuthServiceInterface, dashboardService services.DashboardServiceInterface) *OpticienController {
	return &OpticienController{
		authService:      authService,
		dashboardService: dashboardService,
	}
}

// UpdateProfile applies a partial update to the authenticated opticien's
// own record; a provided password is re-hashed before storage.
func (o *OpticienController) UpdateProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.UpdateOpticienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	opticien, err := o.authService.UpdateProfile(c.Request.Context(), principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, opticien, "Profile updated successfully")
}

// GetStats godoc
// @Summary Dashboard statistics for the authenticated opticien
// @Tags Opticien
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/opticien/stats [get]
func (o *OpticienController) GetStats(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	stats, err := o.dashboardService.GetStats(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}
