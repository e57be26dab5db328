package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emptyshell/pkg/utils"
)

func newTestRouter(tm *utils.TokenManager) (*gin.Engine, *Principal) {
	gin.SetMode(gin.TestMode)

	var seen Principal
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tm), func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if ok {
			seen = principal
		}
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestMissingAuthorizationHeader(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	r, _ := newTestRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNonBearerHeaderRejected(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	r, _ := newTestRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidTokenRejected(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	r, _ := newTestRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenAttachesPrincipal(t *testing.T) {
	tm := utils.NewTokenManager("test-secret", time.Hour)
	r, seen := newTestRouter(tm)

	principalID := uuid.New()
	token, err := tm.CreateToken(principalID, "a@x.com", UserTypeOpticien)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, principalID, seen.ID)
	assert.Equal(t, "a@x.com", seen.Email)
	assert.Equal(t, UserTypeOpticien, seen.UserType)
}

func TestRequireUserTypeBlocksOtherSide(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tm := utils.NewTokenManager("test-secret", time.Hour)

	r := gin.New()
	r.GET("/opticien-only", JWTAuthMiddleware(tm), RequireUserType(UserTypeOpticien), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, err := tm.CreateToken(uuid.New(), "c@x.com", UserTypeClient)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/opticien-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
