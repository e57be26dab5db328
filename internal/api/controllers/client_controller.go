package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type ClientController struct {
	clientService services.ClientServiceInterface
}

func NewClientController(clientService services.ClientServiceInterface) *ClientController {
	return &ClientController{
		clientService: clientService,
	}
}

// Register godoc
// @Summary Register a new client portal account
// @Tags Client
// @Accept json
// @Produce json
// @Param request body request_models.RegisterClientRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/client/register [post]
func (cc *ClientController) Register(c *gin.Context) {
	var req request_models.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	result, err := cc.clientService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Account created successfully")
}

func (cc *ClientController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	result, err := cc.clientService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

func (cc *ClientController) Profile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	client, err := cc.clientService.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, client, "Profile fetched successfully")
}

// GetData returns everything the portal shows for the authenticated
// client: their cagnottes, paiements, livraisons, submissions and the
// chosen optician's catalogue.
func (cc *ClientController) GetData(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	data, err := cc.clientService.GetData(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Client data fetched successfully")
}

func (cc *ClientController) SubmitRequest(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	var req request_models.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	submission, err := cc.clientService.SubmitRequest(c.Request.Context(), principal.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, submission, "Request submitted successfully")
}
