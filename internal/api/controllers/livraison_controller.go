package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type LivraisonController struct {
	livraisonService services.LivraisonServiceInterface
}

func NewLivraisonController(livraisonService services.LivraisonServiceInterface) *LivraisonController {
	return &LivraisonController{
		livraisonService: livraisonService,
	}
}

func (l *LivraisonController) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	livraisons, err := l.livraisonService.List(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, livraisons, "Livraisons fetched successfully")
}

func (l *LivraisonController) GetByID(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	livraison, err := l.livraisonService.GetByID(c.Request.Context(), id, principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, livraison, "Livraison fetched successfully")
}

func (l *LivraisonController) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.CreateLivraisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	livraison, err := l.livraisonService.Create(c.Request.Context(), principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, livraison, "Livraison created successfully")
}

func (l *LivraisonController) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req request_models.UpdateLivraisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	livraison, err := l.livraisonService.Update(c.Request.Context(), id, principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, livraison, "Livraison updated successfully")
}

func (l *LivraisonController) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := l.livraisonService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Livraison deleted successfully")
}
