package cagnotte_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
)

var Module = fx.Provide(
	provideCagnotteRepo, provideCagnotteService)

func provideCagnotteRepo(db *gorm.DB) repositories.ClientScopedRepository[db_models.Cagnotte] {
	return repositories.NewClientScopedRepository[db_models.Cagnotte](db)
}

func provideCagnotteService(cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte]) services.CagnotteServiceInterface {
	return services.NewCagnotteService(cagnotteRepo)
}
