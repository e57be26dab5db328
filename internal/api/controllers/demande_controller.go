package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type DemandeController struct {
	demandeService services.DemandeServiceInterface
}

func NewDemandeController(demandeService services.DemandeServiceInterface) *DemandeController {
	return &DemandeController{
		demandeService: demandeService,
	}
}

func (d *DemandeController) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	demandes, err := d.demandeService.List(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, demandes, "Demandes fetched successfully")
}

func (d *DemandeController) GetByID(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	demande, err := d.demandeService.GetByID(c.Request.Context(), id, principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, demande, "Demande fetched successfully")
}

func (d *DemandeController) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreateDemandeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	demande, err := d.demandeService.Create(c.Request.Context(), principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, demande, "Demande created successfully")
}

func (d *DemandeController) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UpdateDemandeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	demande, err := d.demandeService.Update(c.Request.Context(), id, principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, demande, "Demande updated successfully")
}

func (d *DemandeController) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := d.demandeService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Demande deleted successfully")
}

// UploadFiles records the stored document filenames on a submission the
// caller owns.
func (d *DemandeController) UploadFiles(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UploadDemandeFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	demande, err := d.demandeService.AttachFiles(c.Request.Context(), id, principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, demande, "Files uploaded successfully")
}
