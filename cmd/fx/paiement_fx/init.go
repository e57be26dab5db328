package paiement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
)

var Module = fx.Provide(
	providePaiementRepo, providePaiementService)

func providePaiementRepo(db *gorm.DB) repositories.ClientScopedRepository[db_models.Paiement] {
	return repositories.NewClientScopedRepository[db_models.Paiement](db)
}

func providePaiementService(paiementRepo repositories.ClientScopedRepository[db_models.Paiement]) services.PaiementServiceInterface {
	return services.NewPaiementService(paiementRepo)
}
