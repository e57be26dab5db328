package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type PaiementController struct {
	paiementService services.PaiementServiceInterface
}

func NewPaiementController(paiementService services.PaiementServiceInterface) *PaiementController {
	return &PaiementController{
		paiementService: paiementService,
	}
}

func (p *PaiementController) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	paiements, err := p.paiementService.List(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paiements, "Paiements fetched successfully")
}

func (p *PaiementController) GetByID(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	paiement, err := p.paiementService.GetByID(c.Request.Context(), id, principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paiement, "Paiement fetched successfully")
}

func (p *PaiementController) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreatePaiementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	paiement, err := p.paiementService.Create(c.Request.Context(), principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, paiement, "Paiement created successfully")
}

func (p *PaiementController) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UpdatePaiementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	paiement, err := p.paiementService.Update(c.Request.Context(), id, principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paiement, "Paiement updated successfully")
}

func (p *PaiementController) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := p.paiementService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Paiement deleted successfully")
}
