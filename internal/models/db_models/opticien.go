package db_models

type Opticien struct {
	BaseModel
	Nom          string `json:"nom"`
	Prenom       string `json:"prenom"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-" gorm:"column:password"`
	Telephone    string `json:"telephone,omitempty"`
	Adresse      string `json:"adresse,omitempty"`
	Ville        string `json:"ville,omitempty"`
	CodePostal   string `json:"codePostal,omitempty"`
	Siret        string `json:"siret,omitempty"`
}

func (Opticien) TableName() string {
	return "opticiens"
}
