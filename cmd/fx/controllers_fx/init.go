package controllers_fx

import (
	"go.uber.org/fx"

	"emptyshell/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewOpticienController),
	fx.Provide(controllers.NewClientController),
	fx.Provide(controllers.NewDemandeController),
	fx.Provide(controllers.NewCagnotteController),
	fx.Provide(controllers.NewPaiementController),
	fx.Provide(controllers.NewLivraisonController),
	fx.Provide(controllers.NewProduitController))
