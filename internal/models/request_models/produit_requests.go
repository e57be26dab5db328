package request_models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreateProduitRequest struct {
	Nom              string          `json:"nom" binding:"required"`
	Marque           string          `json:"marque"`
	Type             string          `json:"type" binding:"required,oneof=monture verre_correcteur verre_solaire"`
	Reference        string          `json:"reference"`
	Prix             decimal.Decimal `json:"prix" binding:"required"`
	Stock            int             `json:"stock"`
	Description      string          `json:"description"`
	Caracteristiques json.RawMessage `json:"caracteristiques"`
}

type UpdateProduitRequest struct {
	Nom              *string          `json:"nom"`
	Marque           *string          `json:"marque"`
	Type             *string          `json:"type" binding:"omitempty,oneof=monture verre_correcteur verre_solaire"`
	Reference        *string          `json:"reference"`
	Prix             *decimal.Decimal `json:"prix"`
	Stock            *int             `json:"stock"`
	Description      *string          `json:"description"`
	Caracteristiques json.RawMessage  `json:"caracteristiques"`
}
