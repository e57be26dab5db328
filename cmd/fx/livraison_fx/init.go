package livraison_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
)

var Module = fx.Provide(
	provideLivraisonRepo, provideLivraisonService)

func provideLivraisonRepo(db *gorm.DB) repositories.ClientScopedRepository[db_models.Livraison] {
	return repositories.NewClientScopedRepository[db_models.Livraison](db)
}

func provideLivraisonService(livraisonRepo repositories.ClientScopedRepository[db_models.Livraison]) services.LivraisonServiceInterface {
	return services.NewLivraisonService(livraisonRepo)
}
