package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/pkg/utils"
)

func createTestDemande(t *testing.T, service DemandeServiceInterface, owner uuid.UUID) *db_models.ClientSubmission {
	t.Helper()
	demande, err := service.Create(context.Background(), owner, request_models.CreateDemandeRequest{
		NomClient:    "Morel",
		PrenomClient: "Paul",
		EmailClient:  "paul@x.com",
	})
	require.NoError(t, err)
	return demande
}

func TestAttachFilesPersistsFilenames(t *testing.T) {
	service := newDemandeService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	demande := createTestDemande(t, service, owner)

	updated, err := service.AttachFiles(ctx, demande.ID, owner, request_models.UploadDemandeFilesRequest{
		OrdonnanceFilename: "ordonnance.pdf",
		MutuelleFilename:   "mutuelle.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "ordonnance.pdf", updated.OrdonnanceFilename)
	assert.Equal(t, "mutuelle.pdf", updated.MutuelleFilename)

	// The filenames survive a reload.
	fetched, err := service.GetByID(ctx, demande.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "ordonnance.pdf", fetched.OrdonnanceFilename)
	assert.Equal(t, "mutuelle.pdf", fetched.MutuelleFilename)
}

func TestAttachFilesKeepsExistingWhenOmitted(t *testing.T) {
	service := newDemandeService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	demande := createTestDemande(t, service, owner)

	_, err := service.AttachFiles(ctx, demande.ID, owner, request_models.UploadDemandeFilesRequest{
		OrdonnanceFilename: "ordonnance.pdf",
	})
	require.NoError(t, err)

	// A second upload of only the mutuelle must not clobber the ordonnance.
	updated, err := service.AttachFiles(ctx, demande.ID, owner, request_models.UploadDemandeFilesRequest{
		MutuelleFilename: "mutuelle.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "ordonnance.pdf", updated.OrdonnanceFilename)
	assert.Equal(t, "mutuelle.pdf", updated.MutuelleFilename)
}

func TestAttachFilesCrossOwnerIsForbidden(t *testing.T) {
	service := newDemandeService(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	demande := createTestDemande(t, service, owner)

	_, err := service.AttachFiles(ctx, demande.ID, other, request_models.UploadDemandeFilesRequest{
		OrdonnanceFilename: "hijack.pdf",
	})
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	// The owner's submission is untouched.
	fetched, err := service.GetByID(ctx, demande.ID, owner)
	require.NoError(t, err)
	assert.Empty(t, fetched.OrdonnanceFilename)
}

func TestAttachFilesUnknownSubmission(t *testing.T) {
	service := newDemandeService(newTestDB(t))

	_, err := service.AttachFiles(context.Background(), uuid.New(), uuid.New(), request_models.UploadDemandeFilesRequest{
		OrdonnanceFilename: "ordonnance.pdf",
	})
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
