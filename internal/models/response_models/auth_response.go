package response_models

import "emptyshell/internal/models/db_models"

// OpticienAuthResponse is the login/register payload for the dashboard
// side. The password hash never serializes, the model strips it.
type OpticienAuthResponse struct {
	Token    string              `json:"token"`
	Opticien *db_models.Opticien `json:"opticien"`
}

type ClientAuthResponse struct {
	Token  string            `json:"token"`
	Client *db_models.Client `json:"client"`
}
