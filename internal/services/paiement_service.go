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

type PaiementServiceInterface interface {
	List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Paiement, error)
	GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Paiement, error)
	Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreatePaiementRequest) (*db_models.Paiement, error)
	Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdatePaiementRequest) (*db_models.Paiement, error)
	Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error
}

type PaiementService struct {
	paiementRepo repositories.ClientScopedRepository[db_models.Paiement]
}

func NewPaiementService(paiementRepo repositories.ClientScopedRepository[db_models.Paiement]) PaiementServiceInterface {
	return &PaiementService{
		paiementRepo: paiementRepo,
	}
}

func (s *PaiementService) List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Paiement, error) {
	return listOwned(ctx, s.paiementRepo, opticienID)
}

func (s *PaiementService) GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Paiement, error) {
	return FetchOwned(ctx, s.paiementRepo, id, opticienID)
}

func (s *PaiementService) Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreatePaiementRequest) (*db_models.Paiement, error) {
	statut := request.Statut
	if statut == "" {
		statut = db_models.PaiementEnAttente
	}

	reste := decimal.Zero
	if request.ResteACharge != nil {
		reste = *request.ResteACharge
	}

	paiement := &db_models.Paiement{
		OpticienID:           opticienID,
		CagnotteID:           request.CagnotteID,
		ClientID:             request.ClientID,
		Montant:              request.Montant,
		ResteACharge:         reste,
		Statut:               statut,
		ModePaiement:         request.ModePaiement,
		ReferenceTransaction: request.ReferenceTransaction,
		DatePaiement:         request.DatePaiement,
	}

	if err := s.paiementRepo.Insert(ctx, paiement); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return paiement, nil
}

func (s *PaiementService) Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdatePaiementRequest) (*db_models.Paiement, error) {
	paiement, err := FetchOwned(ctx, s.paiementRepo, id, opticienID)
	if err != nil {
		return nil, err
	}

	if request.CagnotteID != nil {
		paiement.CagnotteID = request.CagnotteID
	}
	if request.Montant != nil {
		paiement.Montant = *request.Montant
	}
	if request.ResteACharge != nil {
		paiement.ResteACharge = *request.ResteACharge
	}
	if request.Statut != nil {
		paiement.Statut = *request.Statut
	}
	if request.ModePaiement != nil {
		paiement.ModePaiement = *request.ModePaiement
	}
	if request.ReferenceTransaction != nil {
		paiement.ReferenceTransaction = *request.ReferenceTransaction
	}
	if request.DatePaiement != nil {
		paiement.DatePaiement = request.DatePaiement
	}

	if err := s.paiementRepo.Update(ctx, paiement); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return paiement, nil
}

func (s *PaiementService) Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error {
	return deleteOwned(ctx, s.paiementRepo, id, opticienID)
}
