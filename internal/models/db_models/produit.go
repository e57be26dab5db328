package db_models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ProduitMonture         = "monture"
	ProduitVerreCorrecteur = "verre_correcteur"
	ProduitVerreSolaire    = "verre_solaire"
)

type Produit struct {
	BaseModel
	OpticienID       uuid.UUID       `json:"opticienId" gorm:"type:uuid;index"`
	Nom              string          `json:"nom"`
	Marque           string          `json:"marque,omitempty"`
	Type             string          `json:"type"`
	Reference        string          `json:"reference,omitempty"`
	Prix             decimal.Decimal `json:"prix" gorm:"type:decimal(10,2)"`
	Stock            int             `json:"stock"`
	Description      string          `json:"description,omitempty"`
	Caracteristiques json.RawMessage `json:"caracteristiques,omitempty" gorm:"type:jsonb"`
}

func (Produit) TableName() string {
	return "produits"
}

func (p Produit) OwnerID() uuid.UUID {
	return p.OpticienID
}
