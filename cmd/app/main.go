package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"emptyshell/cmd/fx/auth_fx"
	"emptyshell/cmd/fx/cagnotte_fx"
	"emptyshell/cmd/fx/client_fx"
	"emptyshell/cmd/fx/controllers_fx"
	"emptyshell/cmd/fx/dashboard_fx"
	"emptyshell/cmd/fx/db_fx"
	"emptyshell/cmd/fx/demande_fx"
	"emptyshell/cmd/fx/livraison_fx"
	"emptyshell/cmd/fx/paiement_fx"
	"emptyshell/cmd/fx/produit_fx"
	"emptyshell/internal/api/controllers"
	"emptyshell/internal/infra"
	"emptyshell/pkg/middleware"
	"emptyshell/pkg/utils"
)

func main() {
	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		client_fx.Module,
		demande_fx.Module,
		cagnotte_fx.Module,
		paiement_fx.Module,
		livraison_fx.Module,
		produit_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	tokens *utils.TokenManager,
	authController *controllers.AuthController,
	opticienController *controllers.OpticienController,
	clientController *controllers.ClientController,
	demandeController *controllers.DemandeController,
	cagnotteController *controllers.CagnotteController,
	paiementController *controllers.PaiementController,
	livraisonController *controllers.LivraisonController,
	produitController *controllers.ProduitController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	RegisterRoutes(r, tokens,
		authController, opticienController, clientController,
		demandeController, cagnotteController, paiementController,
		livraisonController, produitController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenManager,
	authController *controllers.AuthController,
	opticienController *controllers.OpticienController,
	clientController *controllers.ClientController,
	demandeController *controllers.DemandeController,
	cagnotteController *controllers.CagnotteController,
	paiementController *controllers.PaiementController,
	livraisonController *controllers.LivraisonController,
	produitController *controllers.ProduitController) {

	authRequired := middleware.JWTAuthMiddleware(tokens)
	opticienOnly := middleware.RequireUserType(middleware.UserTypeOpticien)
	clientOnly := middleware.RequireUserType(middleware.UserTypeClient)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.GET("/profile", authRequired, opticienOnly, authController.Profile)

	client := api.Group("/client")
	client.POST("/register", clientController.Register)
	client.POST("/login", clientController.Login)
	clientProtected := client.Group("", authRequired, clientOnly)
	clientProtected.GET("/profile", clientController.Profile)
	clientProtected.GET("/data", clientController.GetData)
	clientProtected.POST("/submit-request", clientController.SubmitRequest)

	opticien := api.Group("/opticien", authRequired, opticienOnly)
	opticien.PUT("/profile", opticienController.UpdateProfile)
	opticien.GET("/stats", opticienController.GetStats)

	demandes := api.Group("/demandes", authRequired, opticienOnly)
	demandes.GET("", demandeController.List)
	demandes.GET("/:id", demandeController.GetByID)
	demandes.POST("", demandeController.Create)
	demandes.PUT("/:id", demandeController.Update)
	demandes.DELETE("/:id", demandeController.Delete)
	demandes.POST("/:id/upload", demandeController.UploadFiles)

	cagnottes := api.Group("/cagnottes", authRequired, opticienOnly)
	cagnottes.GET("", cagnotteController.List)
	cagnottes.GET("/:id", cagnotteController.GetByID)
	cagnottes.POST("", cagnotteController.Create)
	cagnottes.PUT("/:id", cagnotteController.Update)
	cagnottes.DELETE("/:id", cagnotteController.Delete)

	paiements := api.Group("/paiements", authRequired, opticienOnly)
	paiements.GET("", paiementController.List)
	paiements.GET("/:id", paiementController.GetByID)
	paiements.POST("", paiementController.Create)
	paiements.PUT("/:id", paiementController.Update)
	paiements.DELETE("/:id", paiementController.Delete)

	livraisons := api.Group("/livraisons", authRequired, opticienOnly)
	livraisons.GET("", livraisonController.List)
	livraisons.GET("/:id", livraisonController.GetByID)
	livraisons.POST("", livraisonController.Create)
	livraisons.PUT("/:id", livraisonController.Update)
	livraisons.DELETE("/:id", livraisonController.Delete)

	produits := api.Group("/produits", authRequired, opticienOnly)
	produits.GET("", produitController.List)
	produits.GET("/:id", produitController.GetByID)
	produits.POST("", produitController.Create)
	produits.PUT("/:id", produitController.Update)
	produits.DELETE("/:id", produitController.Delete)
}
