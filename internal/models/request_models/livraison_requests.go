package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateLivraisonRequest struct {
	PaiementID          *uuid.UUID `json:"paiementId"`
	ClientID            *uuid.UUID `json:"clientId"`
	AdresseLivraison    string     `json:"adresseLivraison" binding:"required"`
	VilleLivraison      string     `json:"villeLivraison" binding:"required"`
	CodePostalLivraison string     `json:"codePostalLivraison" binding:"required"`
	Transporteur        string     `json:"transporteur"`
	NumeroSuivi         string     `json:"numeroSuivi"`
	Statut              string     `json:"statut" binding:"omitempty,oneof=preparation expedie livre retour"`
	DateExpedition      *time.Time `json:"dateExpedition"`
	DateLivraison       *time.Time `json:"dateLivraison"`
}

type UpdateLivraisonRequest struct {
	AdresseLivraison    *string    `json:"adresseLivraison"`
	VilleLivraison      *string    `json:"villeLivraison"`
	CodePostalLivraison *string    `json:"codePostalLivraison"`
	Transporteur        *string    `json:"transporteur"`
	NumeroSuivi         *string    `json:"numeroSuivi"`
	Statut              *string    `json:"statut" binding:"omitempty,oneof=preparation expedie livre retour"`
	DateExpedition      *time.Time `json:"dateExpedition"`
	DateLivraison       *time.Time `json:"dateLivraison"`
}
