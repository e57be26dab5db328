package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

type CagnotteServiceInterface interface {
	List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Cagnotte, error)
	GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Cagnotte, error)
	Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateCagnotteRequest) (*db_models.Cagnotte, error)
	Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateCagnotteRequest) (*db_models.Cagnotte, error)
	Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error
}

type CagnotteService struct {
	cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte]
}

func NewCagnotteService(cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte]) CagnotteServiceInterface {
	return &CagnotteService{
		cagnotteRepo: cagnotteRepo,
	}
}

func (s *CagnotteService) List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Cagnotte, error) {
	return listOwned(ctx, s.cagnotteRepo, opticienID)
}

func (s *CagnotteService) GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Cagnotte, error) {
	return FetchOwned(ctx, s.cagnotteRepo, id, opticienID)
}

func (s *CagnotteService) Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateCagnotteRequest) (*db_models.Cagnotte, error) {
	statut := request.Statut
	if statut == "" {
		statut = db_models.CagnotteActive
	}

	collecte := decimal.Zero
	if request.MontantCollecte != nil {
		collecte = *request.MontantCollecte
	}

	cagnotte := &db_models.Cagnotte{
		OpticienID:         opticienID,
		ClientSubmissionID: request.ClientSubmissionID,
		ClientID:           request.ClientID,
		Nom:                request.Nom,
		MontantObjectif:    request.MontantObjectif,
		MontantCollecte:    collecte,
		Statut:             statut,
		DateLivraison:      request.DateLivraison,
	}

	if err := s.cagnotteRepo.Insert(ctx, cagnotte); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return cagnotte, nil
}

func (s *CagnotteService) Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateCagnotteRequest) (*db_models.Cagnotte, error) {
	cagnotte, err := FetchOwned(ctx, s.cagnotteRepo, id, opticienID)
	if err != nil {
		return nil, err
	}

	if request.Nom != nil {
		cagnotte.Nom = *request.Nom
	}
	if request.MontantObjectif != nil {
		cagnotte.MontantObjectif = *request.MontantObjectif
	}
	if request.MontantCollecte != nil {
		// No cap against the objectif, collected may exceed the target.
		cagnotte.MontantCollecte = *request.MontantCollecte
	}
	if request.Statut != nil {
		cagnotte.Statut = *request.Statut
	}
	if request.DateLivraison != nil {
		cagnotte.DateLivraison = request.DateLivraison
	}

	if err := s.cagnotteRepo.Update(ctx, cagnotte); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return cagnotte, nil
}

func (s *CagnotteService) Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error {
	return deleteOwned(ctx, s.cagnotteRepo, id, opticienID)
}
