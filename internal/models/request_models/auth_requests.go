package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterOpticienRequest struct {
	Nom        string `json:"nom" binding:"required"`
	Prenom     string `json:"prenom" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
	Ville      string `json:"ville"`
	CodePostal string `json:"codePostal"`
	Siret      string `json:"siret"`
}

// UpdateOpticienRequest carries a partial profile update. Nil fields are
// left untouched.
type UpdateOpticienRequest struct {
	Nom        *string `json:"nom"`
	Prenom     *string `json:"prenom"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Telephone  *string `json:"telephone"`
	Adresse    *string `json:"adresse"`
	Ville      *string `json:"ville"`
	CodePostal *string `json:"codePostal"`
	Siret      *string `json:"siret"`
}
