package services

import (
	"context"

	"github.com/google/uuid"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

type ProduitServiceInterface interface {
	List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Produit, error)
	GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Produit, error)
	Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateProduitRequest) (*db_models.Produit, error)
	Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateProduitRequest) (*db_models.Produit, error)
	Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error
}

type ProduitService struct {
	produitRepo repositories.ResourceRepository[db_models.Produit]
}

func NewProduitService(produitRepo repositories.ResourceRepository[db_models.Produit]) ProduitServiceInterface {
	return &ProduitService{
		produitRepo: produitRepo,
	}
}

func (s *ProduitService) List(ctx context.Context, opticienID uuid.UUID) ([]db_models.Produit, error) {
	return listOwned(ctx, s.produitRepo, opticienID)
}

func (s *ProduitService) GetByID(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) (*db_models.Produit, error) {
	return FetchOwned(ctx, s.produitRepo, id, opticienID)
}

func (s *ProduitService) Create(ctx context.Context, opticienID uuid.UUID, request request_models.CreateProduitRequest) (*db_models.Produit, error) {
	produit := &db_models.Produit{
		OpticienID:       opticienID,
		Nom:              request.Nom,
		Marque:           request.Marque,
		Type:             request.Type,
		Reference:        request.Reference,
		Prix:             request.Prix,
		Stock:            request.Stock,
		Description:      request.Description,
		Caracteristiques: request.Caracteristiques,
	}

	if err := s.produitRepo.Insert(ctx, produit); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return produit, nil
}

func (s *ProduitService) Update(ctx context.Context, id uuid.UUID, opticienID uuid.UUID, request request_models.UpdateProduitRequest) (*db_models.Produit, error) {
	produit, err := FetchOwned(ctx, s.produitRepo, id, opticienID)
	if err != nil {
		return nil, err
	}

	if request.Nom != nil {
		produit.Nom = *request.Nom
	}
	if request.Marque != nil {
		produit.Marque = *request.Marque
	}
	if request.Type != nil {
		produit.Type = *request.Type
	}
	if request.Reference != nil {
		produit.Reference = *request.Reference
	}
	if request.Prix != nil {
		produit.Prix = *request.Prix
	}
	if request.Stock != nil {
		produit.Stock = *request.Stock
	}
	if request.Description != nil {
		produit.Description = *request.Description
	}
	if request.Caracteristiques != nil {
		produit.Caracteristiques = request.Caracteristiques
	}

	if err := s.produitRepo.Update(ctx, produit); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return produit, nil
}

func (s *ProduitService) Delete(ctx context.Context, id uuid.UUID, opticienID uuid.UUID) error {
	return deleteOwned(ctx, s.produitRepo, id, opticienID)
}
