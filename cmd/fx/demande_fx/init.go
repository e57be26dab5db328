package demande_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
)

var Module = fx.Provide(
	provideDemandeRepo, provideDemandeService)

func provideDemandeRepo(db *gorm.DB) repositories.ClientScopedRepository[db_models.ClientSubmission] {
	return repositories.NewClientScopedRepository[db_models.ClientSubmission](db)
}

func provideDemandeService(demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission]) services.DemandeServiceInterface {
	return services.NewDemandeService(demandeRepo)
}
