package services

import (
	"context"

	"github.com/google/uuid"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

type DemandeServiceInterface interface {
	List(ctx context.Context, opticienID uuid.UUID) ([]db_models.ClientSubmission, error)
	GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.ClientSubmission, error)
	Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateDemandeRequest) (*db_models.ClientSubmission, error)
	Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateDemandeRequest) (*db_models.ClientSubmission, error)
	Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error
	AttachFiles(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UploadDemandeFilesRequest) (*db_models.ClientSubmission, error)
}

type DemandeService struct {
	demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission]
}

func NewDemandeService(demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission]) DemandeServiceInterface {
	return &DemandeService{
		demandeRepo: demandeRepo,
	}
}

func (s *DemandeService) List(ctx context.Context, opticienID uuid.UUID) ([]db_models.ClientSubmission, error) {
	return listOwned(ctx, s.demandeRepo, opticienID)
}

func (s *DemandeService) GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.ClientSubmission, error) {
	return FetchOwned(ctx, s.demandeRepo, id, opticienID)
}

func (s *DemandeService) Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateDemandeRequest) (*db_models.ClientSubmission, error) {
	statut := request.Statut
	if statut == "" {
		statut = db_models.SubmissionEnAttente
	}

	submission := &db_models.ClientSubmission{
		OpticienID:         opticienID,
		ClientID:           request.ClientID,
		NomClient:          request.NomClient,
		PrenomClient:       request.PrenomClient,
		EmailClient:        request.EmailClient,
		TelephoneClient:    request.TelephoneClient,
		OrdonnanceFilename: request.OrdonnanceFilename,
		MutuelleName:       request.MutuelleName,
		MutuelleFilename:   request.MutuelleFilename,
		Statut:             statut,
		Notes:              request.Notes,
	}

	if err := s.demandeRepo.Insert(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return submission, nil
}

func (s *DemandeService) Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateDemandeRequest) (*db_models.ClientSubmission, error) {
	submission, err := FetchOwned(ctx, s.demandeRepo, id, opticienID)
	if err != nil {
		return nil, err
	}

	if request.NomClient != nil {
		submission.NomClient = *request.NomClient
	}
	if request.PrenomClient != nil {
		submission.PrenomClient = *request.PrenomClient
	}
	if request.EmailClient != nil {
		submission.EmailClient = *request.EmailClient
	}
	if request.TelephoneClient != nil {
		submission.TelephoneClient = *request.TelephoneClient
	}
	if request.OrdonnanceFilename != nil {
		submission.OrdonnanceFilename = *request.OrdonnanceFilename
	}
	if request.MutuelleName != nil {
		submission.MutuelleName = *request.MutuelleName
	}
	if request.MutuelleFilename != nil {
		submission.MutuelleFilename = *request.MutuelleFilename
	}
	if request.Statut != nil {
		submission.Statut = *request.Statut
	}
	if request.Notes != nil {
		submission.Notes = *request.Notes
	}

	if err := s.demandeRepo.Update(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return submission, nil
}

func (s *DemandeService) Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error {
	return deleteOwned(ctx, s.demandeRepo, id, opticienID)
}

// AttachFiles records the uploaded document filenames on the submission.
// File contents are not stored here.
func (s *DemandeService) AttachFiles(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UploadDemandeFilesRequest) (*db_models.ClientSubmission, error) {
	submission, err := FetchOwned(ctx, s.demandeRepo, id, opticienID)
	if err != nil {
		return nil, err
	}

	if request.OrdonnanceFilename != "" {
		submission.OrdonnanceFilename = request.OrdonnanceFilename
	}
	if request.MutuelleFilename != "" {
		submission.MutuelleFilename = request.MutuelleFilename
	}

	if err := s.demandeRepo.Update(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return submission, nil
}
