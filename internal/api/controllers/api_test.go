package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
	"emptyshell/pkg/middleware"
	"emptyshell/pkg/utils"
)

func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&db_models.Opticien{},
		&db_models.Client{},
		&db_models.ClientSubmission{},
		&db_models.Cagnotte{},
		&db_models.Paiement{},
		&db_models.Livraison{},
		&db_models.Produit{},
	))

	tokens := utils.NewTokenManager("test-secret", time.Hour)

	opticienRepo := repositories.NewOpticienRepository(db)
	cagnotteRepo := repositories.NewClientScopedRepository[db_models.Cagnotte](db)
	produitRepo := repositories.NewResourceRepository[db_models.Produit](db)

	authController := NewAuthController(services.NewAuthService(opticienRepo, tokens))
	cagnotteController := NewCagnotteController(services.NewCagnotteService(cagnotteRepo))
	produitController := NewProduitController(services.NewProduitService(produitRepo))

	authRequired := middleware.JWTAuthMiddleware(tokens)
	opticienOnly := middleware.RequireUserType(middleware.UserTypeOpticien)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)

	cagnottes := api.Group("/cagnottes", authRequired, opticienOnly)
	cagnottes.GET("/:id", cagnotteController.GetByID)
	cagnottes.POST("", cagnotteController.Create)

	produits := api.Group("/produits", authRequired, opticienOnly)
	produits.GET("", produitController.List)
	produits.POST("", produitController.Create)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerOpticien(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"nom":      "Durand",
		"prenom":   "Alice",
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestRegisterLoginCreateAndListProduit(t *testing.T) {
	r := newTestAPI(t)
	registerOpticien(t, r, "a@x.com")

	// Login with the same credentials and use that token from here on.
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Data.Token

	w = doJSON(t, r, http.MethodPost, "/api/produits", token, gin.H{
		"nom":   "Ray-Ban Classic",
		"type":  "monture",
		"prix":  "120.00",
		"stock": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/produits", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data []struct {
			ID        string `json:"id"`
			Nom       string `json:"nom"`
			Type      string `json:"type"`
			Prix      string `json:"prix"`
			Stock     int    `json:"stock"`
			CreatedAt int64  `json:"createdAt"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Ray-Ban Classic", list.Data[0].Nom)
	assert.Equal(t, "monture", list.Data[0].Type)
	assert.Equal(t, 10, list.Data[0].Stock)
	assert.NotEmpty(t, list.Data[0].ID)
	assert.NotZero(t, list.Data[0].CreatedAt)
}

func TestCrossOwnerCagnotteIs403(t *testing.T) {
	r := newTestAPI(t)
	tokenA := registerOpticien(t, r, "a@x.com")
	tokenB := registerOpticien(t, r, "b@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/cagnottes", tokenA, gin.H{
		"nom":             "Lunettes de vue",
		"montantObjectif": "450.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/cagnottes/"+created.Data.ID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cagnottes/"+created.Data.ID, tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnauthenticatedRequestIs401(t *testing.T) {
	r := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/produits", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDuplicateRegistrationIs400(t *testing.T) {
	r := newTestAPI(t)
	registerOpticien(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"nom":      "Durand",
		"prenom":   "Alice",
		"email":    "a@x.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidationErrorsAreStructured(t *testing.T) {
	r := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"nom":      "Durand",
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Errors)
}

func TestPasswordNeverSerialized(t *testing.T) {
	r := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"nom":      "Durand",
		"prenom":   "Alice",
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "password")
}
