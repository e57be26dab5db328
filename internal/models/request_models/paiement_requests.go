package request_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaiementRequest struct {
	CagnotteID           *uuid.UUID       `json:"cagnotteId"`
	ClientID             *uuid.UUID       `json:"clientId"`
	Montant              decimal.Decimal  `json:"montant" binding:"required"`
	ResteACharge         *decimal.Decimal `json:"resteACharge"`
	Statut               string           `json:"statut" binding:"omitempty,oneof=en_attente paye partiel annule"`
	ModePaiement         string           `json:"modePaiement" binding:"omitempty,oneof=carte virement cheque especes"`
	ReferenceTransaction string           `json:"referenceTransaction"`
	DatePaiement         *time.Time       `json:"datePaiement"`
}

type UpdatePaiementRequest struct {
	CagnotteID           *uuid.UUID       `json:"cagnotteId"`
	Montant              *decimal.Decimal `json:"montant"`
	ResteACharge         *decimal.Decimal `json:"resteACharge"`
	Statut               *string          `json:"statut" binding:"omitempty,oneof=en_attente paye partiel annule"`
	ModePaiement         *string          `json:"modePaiement" binding:"omitempty,oneof=carte virement cheque especes"`
	ReferenceTransaction *string          `json:"referenceTransaction"`
	DatePaiement         *time.Time       `json:"datePaiement"`
}
