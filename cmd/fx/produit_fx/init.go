package produit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
)

var Module = fx.Provide(
	provideProduitRepo, provideProduitService)

func provideProduitRepo(db *gorm.DB) repositories.ResourceRepository[db_models.Produit] {
	return repositories.NewResourceRepository[db_models.Produit](db)
}

func provideProduitService(produitRepo repositories.ResourceRepository[db_models.Produit]) services.ProduitServiceInterface {
	return services.NewProduitService(produitRepo)
}
