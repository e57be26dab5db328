package response_models

import "emptyshell/internal/models/db_models"

// ClientDataResponse is the client portal's aggregate view: everything
// tied to the client plus the catalogue of the optician they picked.
type ClientDataResponse struct {
	Client      *db_models.Client            `json:"client"`
	Cagnottes   []db_models.Cagnotte         `json:"cagnottes"`
	Paiements   []db_models.Paiement         `json:"paiements"`
	Livraisons  []db_models.Livraison        `json:"livraisons"`
	Submissions []db_models.ClientSubmission `json:"submissions"`
	Produits    []db_models.Produit          `json:"produits"`
}
