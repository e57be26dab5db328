package dashboard_fx

import (
	"go.uber.org/fx"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission],
	cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte],
	paiementRepo repositories.ClientScopedRepository[db_models.Paiement],
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison],
) services.DashboardServiceInterface {
	return services.NewDashboardService(demandeRepo, cagnotteRepo, paiementRepo, livraisonRepo)
}
