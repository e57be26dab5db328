package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CagnotteActive   = "active"
	CagnotteTerminee = "terminee"
	CagnotteAnnulee  = "annulee"
)

// Cagnotte is a savings pool tracking progress toward a purchase target.
// MontantCollecte may exceed MontantObjectif, nothing caps it on write.
type Cagnotte struct {
	BaseModel
	OpticienID         uuid.UUID       `json:"opticienId" gorm:"type:uuid;index"`
	ClientSubmissionID *uuid.UUID      `json:"clientSubmissionId,omitempty" gorm:"type:uuid"`
	ClientID           *uuid.UUID      `json:"clientId,omitempty" gorm:"type:uuid;index"`
	Nom                string          `json:"nom"`
	MontantObjectif    decimal.Decimal `json:"montantObjectif" gorm:"type:decimal(10,2)"`
	MontantCollecte    decimal.Decimal `json:"montantCollecte" gorm:"type:decimal(10,2)"`
	Statut             string          `json:"statut" gorm:"default:active"`
	DateLivraison      *time.Time      `json:"dateLivraison,omitempty"`
}

func (Cagnotte) TableName() string {
	return "cagnottes"
}

func (c Cagnotte) OwnerID() uuid.UUID {
	return c.OpticienID
}
