package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"emptyshell/pkg/middleware"
	"emptyshell/pkg/utils"
)

// currentPrincipal pulls the verified identity off the request. The JWT
// middleware always runs first on protected routes, so a miss means the
// route is wired without it.
func currentPrincipal(c *gin.Context) (middleware.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		c.Abort()
		return middleware.Principal{}, false
	}
	return principal, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid resource ID")
		return uuid.Nil, false
	}
	return id, true
}
