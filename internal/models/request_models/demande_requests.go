package request_models

import "github.com/google/uuid"

type CreateDemandeRequest struct {
	ClientID           *uuid.UUID `json:"clientId"`
	NomClient          string     `json:"nomClient" binding:"required"`
	PrenomClient       string     `json:"prenomClient" binding:"required"`
	EmailClient        string     `json:"emailClient" binding:"required,email"`
	TelephoneClient    string     `json:"telephoneClient"`
	OrdonnanceFilename string     `json:"ordonnanceFilename"`
	MutuelleName       string     `json:"mutuelleName"`
	MutuelleFilename   string     `json:"mutuelleFilename"`
	Statut             string     `json:"statut" binding:"omitempty,oneof=en_attente valide refuse incomplet"`
	Notes              string     `json:"notes"`
}

type UpdateDemandeRequest struct {
	NomClient          *string `json:"nomClient"`
	PrenomClient       *string `json:"prenomClient"`
	EmailClient        *string `json:"emailClient" binding:"omitempty,email"`
	TelephoneClient    *string `json:"telephoneClient"`
	OrdonnanceFilename *string `json:"ordonnanceFilename"`
	MutuelleName       *string `json:"mutuelleName"`
	MutuelleFilename   *string `json:"mutuelleFilename"`
	Statut             *string `json:"statut" binding:"omitempty,oneof=en_attente valide refuse incomplet"`
	Notes              *string `json:"notes"`
}

// UploadDemandeFilesRequest records the stored filenames for a
// submission's documents. The files themselves are handled elsewhere.
type UploadDemandeFilesRequest struct {
	OrdonnanceFilename string `json:"ordonnanceFilename"`
	MutuelleFilename   string `json:"mutuelleFilename"`
}
