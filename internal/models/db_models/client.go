package db_models

import "github.com/google/uuid"

// Client is an end customer of an optician, using the client portal.
// OpticienID is set once the client has chosen an optician to fulfill
// their request.
type Client struct {
	BaseModel
	Nom          string     `json:"nom"`
	Prenom       string     `json:"prenom"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password"`
	Telephone    string     `json:"telephone,omitempty"`
	OpticienID   *uuid.UUID `json:"opticienId,omitempty" gorm:"type:uuid;index"`
}

func (Client) TableName() string {
	return "clients"
}
