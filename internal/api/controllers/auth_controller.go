package controllers

import (
	"github.com/gin-gonic/gin"

	"emptyshell/internal/models/request_models"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register godoc
// @Summary Register a new opticien account
// @Description Create an opticien account and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterOpticienRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterOpticienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	result, err := a.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Account created successfully")
}

// Login godoc
// @Summary Login to an opticien account
// @Description Authenticate an opticien and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	result, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// Profile godoc
// @Summary Get the authenticated opticien's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/profile [get]
func (a *AuthController) Profile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}

	opticien, err := a.authService.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, opticien, "Profile fetched successfully")
}
