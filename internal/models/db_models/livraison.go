package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LivraisonPreparation = "preparation"
	LivraisonExpedie     = "expedie"
	LivraisonLivre       = "livre"
	LivraisonRetour      = "retour"
)

type Livraison struct {
	BaseModel
	OpticienID          uuid.UUID  `json:"opticienId" gorm:"type:uuid;index"`
	PaiementID          *uuid.UUID `json:"paiementId,omitempty" gorm:"type:uuid"`
	ClientID            *uuid.UUID `json:"clientId,omitempty" gorm:"type:uuid;index"`
	AdresseLivraison    string     `json:"adresseLivraison"`
	VilleLivraison      string     `json:"villeLivraison"`
	CodePostalLivraison string     `json:"codePostalLivraison"`
	Transporteur        string     `json:"transporteur,omitempty"`
	NumeroSuivi         string     `json:"numeroSuivi,omitempty"`
	Statut              string     `json:"statut" gorm:"default:preparation"`
	DateExpedition      *time.Time `json:"dateExpedition,omitempty"`
	DateLivraison       *time.Time `json:"dateLivraison,omitempty"`
}

func (Livraison) TableName() string {
	return "livraisons"
}

func (l Livraison) OwnerID() uuid.UUID {
	return l.OpticienID
}
