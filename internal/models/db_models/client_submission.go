package db_models

import "github.com/google/uuid"

const (
	SubmissionEnAttente = "en_attente"
	SubmissionValide    = "valide"
	SubmissionRefuse    = "refuse"
	SubmissionIncomplet = "incomplet"
)

// ClientSubmission is a client's request with prescription and insurance
// documents, addressed to one optician.
type ClientSubmission struct {
	BaseModel
	OpticienID         uuid.UUID  `json:"opticienId" gorm:"type:uuid;index"`
	ClientID           *uuid.UUID `json:"clientId,omitempty" gorm:"type:uuid;index"`
	NomClient          string     `json:"nomClient"`
	PrenomClient       string     `json:"prenomClient"`
	EmailClient        string     `json:"emailClient"`
	TelephoneClient    string     `json:"telephoneClient,omitempty"`
	OrdonnanceFilename string     `json:"ordonnanceFilename,omitempty"`
	MutuelleName       string     `json:"mutuelleName,omitempty"`
	MutuelleFilename   string     `json:"mutuelleFilename,omitempty"`
	Statut             string     `json:"statut" gorm:"default:en_attente"`
	Notes              string     `json:"notes,omitempty"`
}

func (ClientSubmission) TableName() string {
	return "client_submissions"
}

func (s ClientSubmission) OwnerID() uuid.UUID {
	return s.OpticienID
}
