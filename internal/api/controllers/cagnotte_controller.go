package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type CagnotteController struct {
	cagnotteService services.CagnotteServiceInterface
}

func NewCagnotteController(cagnotteService services.CagnotteServiceInterface) *CagnotteController {
	return &CagnotteController{
		cagnotteService: cagnotteService,
	}
}

func (cc *CagnotteController) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	cagnottes, err := cc.cagnotteService.List(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cagnottes, "Cagnottes fetched successfully")
}

func (cc *CagnotteController) GetByID(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	cagnotte, err := cc.cagnotteService.GetByID(c.Request.Context(), id, principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cagnotte, "Cagnotte fetched successfully")
}

func (cc *CagnotteController) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreateCagnotteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	cagnotte, err := cc.cagnotteService.Create(c.Request.Context(), principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, cagnotte, "Cagnotte created successfully")
}

func (cc *CagnotteController) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UpdateCagnotteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	cagnotte, err := cc.cagnotteService.Update(c.Request.Context(), id, principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cagnotte, "Cagnotte updated successfully")
}

func (cc *CagnotteController) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := cc.cagnotteService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cagnotte deleted successfully")
}
