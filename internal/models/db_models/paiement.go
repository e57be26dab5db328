package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaiementEnAttente = "en_attente"
	PaiementPaye      = "paye"
	PaiementPartiel   = "partiel"
	PaiementAnnule    = "annule"
)

type Paiement struct {
	BaseModel
	OpticienID           uuid.UUID       `json:"opticienId" gorm:"type:uuid;index"`
	CagnotteID           *uuid.UUID      `json:"cagnotteId,omitempty" gorm:"type:uuid"`
	ClientID             *uuid.UUID      `json:"clientId,omitempty" gorm:"type:uuid;index"`
	Montant              decimal.Decimal `json:"montant" gorm:"type:decimal(10,2)"`
	ResteACharge         decimal.Decimal `json:"resteACharge" gorm:"type:decimal(10,2)"`
	Statut               string          `json:"statut" gorm:"default:en_attente"`
	ModePaiement         string          `json:"modePaiement,omitempty"`
	ReferenceTransaction string          `json:"referenceTransaction,omitempty"`
	DatePaiement         *time.Time      `json:"datePaiement,omitempty"`
}

func (Paiement) TableName() string {
	return "paiements"
}

func (p Paiement) OwnerID() uuid.UUID {
	return p.OpticienID
}
