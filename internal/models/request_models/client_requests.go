package request_models

import "github.com/google/uuid"

type RegisterClientRequest struct {
	Nom       string `json:"nom" binding:"required"`
	Prenom    string `json:"prenom" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Telephone string `json:"telephone"`
}

// SubmitRequestRequest is the client portal's request submission: the
// chosen optician plus the already-uploaded document filenames. The
// client identity comes from the token, never from the body.
type SubmitRequestRequest struct {
	OpticienID         uuid.UUID `json:"opticienId" binding:"required"`
	OrdonnanceFilename string    `json:"ordonnanceFilename"`
	MutuelleName       string    `json:"mutuelleName"`
	MutuelleFilename   string    `json:"mutuelleFilename"`
	Notes              string    `json:"notes"`
}
