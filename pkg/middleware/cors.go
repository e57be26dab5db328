package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the SPA frontend to call the API. With no
// frontend URL configured any origin is accepted, but then without
// credentials.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{traceHeader}

	if allowedOrigin == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{allowedOrigin}
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
