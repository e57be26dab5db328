package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emptyshell/internal/models/request_models"
	"emptyshell/pkg/utils"
)

func TestProduitCreateThenGetRoundTrip(t *testing.T) {
	service := newProduitService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	created, err := service.Create(ctx, owner, request_models.CreateProduitRequest{
		Nom:   "Ray-Ban Classic",
		Type:  "monture",
		Prix:  decimal.RequireFromString("120.00"),
		Stock: 10,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotZero(t, created.CreatedAt)

	fetched, err := service.GetByID(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Ray-Ban Classic", fetched.Nom)
	assert.Equal(t, "monture", fetched.Type)
	assert.True(t, fetched.Prix.Equal(decimal.RequireFromString("120.00")))
	assert.Equal(t, 10, fetched.Stock)

	listed, err := service.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestCrossOwnerAccessIsForbiddenNotAbsent(t *testing.T) {
	db := newTestDB(t)
	service := newCagnotteService(db)
	ctx := context.Background()

	ownerA := uuid.New()
	ownerB := uuid.New()

	cagnotte, err := service.Create(ctx, ownerA, request_models.CreateCagnotteRequest{
		Nom:             "Lunettes de vue",
		MontantObjectif: decimal.RequireFromString("450.00"),
	})
	require.NoError(t, err)

	// B gets told the resource exists but is not theirs.
	_, err = service.GetByID(ctx, cagnotte.ID, ownerB)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	nom := "hijacked"
	_, err = service.Update(ctx, cagnotte.ID, ownerB, request_models.UpdateCagnotteRequest{Nom: &nom})
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	err = service.Delete(ctx, cagnotte.ID, ownerB)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	// And A's record is untouched by any of that.
	kept, err := service.GetByID(ctx, cagnotte.ID, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "Lunettes de vue", kept.Nom)
}

func TestUnknownResourceIsNotFound(t *testing.T) {
	service := newCagnotteService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()
	missing := uuid.New()

	_, err := service.GetByID(ctx, missing, owner)
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	nom := "x"
	_, err = service.Update(ctx, missing, owner, request_models.UpdateCagnotteRequest{Nom: &nom})
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	err = service.Delete(ctx, missing, owner)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestDeleteIsNotIdempotentSuccess(t *testing.T) {
	service := newProduitService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	produit, err := service.Create(ctx, owner, request_models.CreateProduitRequest{
		Nom:  "Verres solaires",
		Type: "verre_solaire",
		Prix: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, produit.ID, owner))

	err = service.Delete(ctx, produit.ID, owner)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestCagnotteCollectedMayExceedTarget(t *testing.T) {
	service := newCagnotteService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	cagnotte, err := service.Create(ctx, owner, request_models.CreateCagnotteRequest{
		Nom:             "Montures enfant",
		MontantObjectif: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	assert.True(t, cagnotte.MontantCollecte.IsZero())
	assert.Equal(t, "active", cagnotte.Statut)

	over := decimal.RequireFromString("150.00")
	updated, err := service.Update(ctx, cagnotte.ID, owner, request_models.UpdateCagnotteRequest{
		MontantCollecte: &over,
	})
	require.NoError(t, err)
	assert.True(t, updated.MontantCollecte.Equal(over))
	assert.True(t, updated.MontantCollecte.GreaterThan(updated.MontantObjectif))
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	service := newProduitService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	produit, err := service.Create(ctx, owner, request_models.CreateProduitRequest{
		Nom:    "Monture acier",
		Marque: "Silhouette",
		Type:   "monture",
		Prix:   decimal.NewFromInt(200),
		Stock:  5,
	})
	require.NoError(t, err)

	stock := 3
	updated, err := service.Update(ctx, produit.ID, owner, request_models.UpdateProduitRequest{
		Stock: &stock,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Monture acier", updated.Nom)
	assert.Equal(t, "Silhouette", updated.Marque)
	assert.True(t, updated.Prix.Equal(decimal.NewFromInt(200)))
}
