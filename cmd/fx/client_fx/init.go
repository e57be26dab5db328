package client_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

var Module = fx.Provide(
	provideClientRepo, provideClientService)

func provideClientRepo(db *gorm.DB) repositories.ClientRepository {
	return repositories.NewClientRepository(db)
}

func provideClientService(
	clientRepo repositories.ClientRepository,
	demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission],
	cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte],
	paiementRepo repositories.ClientScopedRepository[db_models.Paiement],
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison],
	produitRepo repositories.ResourceRepository[db_models.Produit],
	tokens *utils.TokenManager,
) services.ClientServiceInterface {
	return services.NewClientService(clientRepo, demandeRepo, cagnotteRepo, paiementRepo, livraisonRepo, produitRepo, tokens)
}
