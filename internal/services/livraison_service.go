package services

import (
	"context"

	"github.com/google/uuid"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

type LivraisonServiceInterface interface {
	List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Livraison, error)
	GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Livraison, error)
	Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateLivraisonRequest) (*db_models.Livraison, error)
	Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateLivraisonRequest) (*db_models.Livraison, error)
	Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error
}

type LivraisonService struct {
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison]
}

func NewLivraisonService(livraisonRepo repositories.ClientScopedRepository[db_models.Livraison]) LivraisonServiceInterface {
	return &LivraisonService{
		livraisonRepo: livraisonRepo,
	}
}

func (s *LivraisonService) List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Livraison, error) {
	return listOwned(ctx, s.livraisonRepo, opticienID)
}

func (s *LivraisonService) GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Livraison, error) {
	return FetchOwned(ctx, s.livraisonRepo, id, opticienID)
}

func (s *LivraisonService) Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateLivraisonRequest) (*db_models.Livraison, error) {
	statut := request.Statut
	if statut == "" {
		statut = db_models.LivraisonPreparation
	}

	livraison := &db_models.Livraison{
		OpticienID:          opticienID,
		PaiementID:          request.PaiementID,
		ClientID:            request.ClientID,
		AdresseLivraison:    request.AdresseLivraison,
		VilleLivraison:      request.VilleLivraison,
		CodePostalLivraison: request.CodePostalLivraison,
		Transporteur:        request.Transporteur,
		NumeroSuivi:         request.NumeroSuivi,
		Statut:              statut,
		DateExpedition:      request.DateExpedition,
		DateLivraison:       request.DateLivraison,
	}

	if err := s.livraisonRepo.Insert(ctx, livraison); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return livraison, nil
}

func (s *LivraisonService) Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateLivraisonRequest) (*db_models.Livraison, error) {
	livraison, err := FetchOwned(ctx, s.livraisonRepo, id, opticienID)
	if err != nil {
		return nil, err
	}

	if request.AdresseLivraison != nil {
		livraison.AdresseLivraison = *request.AdresseLivraison
	}
	if request.VilleLivraison != nil {
		livraison.VilleLivraison = *request.VilleLivraison
	}
	if request.CodePostalLivraison != nil {
		livraison.CodePostalLivraison = *request.CodePostalLivraison
	}
	if request.Transporteur != nil {
		livraison.Transporteur = *request.Transporteur
	}
	if request.NumeroSuivi != nil {
		livraison.NumeroSuivi = *request.NumeroSuivi
	}
	if request.Statut != nil {
		livraison.Statut = *request.Statut
	}
	if request.DateExpedition != nil {
		livraison.DateExpedition = request.DateExpedition
	}
	if request.DateLivraison != nil {
		livraison.DateLivraison = request.DateLivraison
	}

	if err := s.livraisonRepo.Update(ctx, livraison); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return livraison, nil
}

func (s *LivraisonService) Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error {
	return deleteOwned(ctx, s.livraisonRepo, id, opticienID)
}
