package request_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCagnotteRequest struct {
	ClientSubmissionID *uuid.UUID       `json:"clientSubmissionId"`
	ClientID           *uuid.UUID       `json:"clientId"`
	Nom                string           `json:"nom" binding:"required"`
	MontantObjectif    decimal.Decimal  `json:"montantObjectif" binding:"required"`
	MontantCollecte    *decimal.Decimal `json:"montantCollecte"`
	Statut             string           `json:"statut" binding:"omitempty,oneof=active terminee annulee"`
	DateLivraison      *time.Time       `json:"dateLivraison"`
}

type UpdateCagnotteRequest struct {
	Nom             *string          `json:"nom"`
	MontantObjectif *decimal.Decimal `json:"montantObjectif"`
	MontantCollecte *decimal.Decimal `json:"montantCollecte"`
	Statut          *string          `json:"statut" binding:"omitempty,oneof=active terminee annulee"`
	DateLivraison   *time.Time       `json:"dateLivraison"`
}
