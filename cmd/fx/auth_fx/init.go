package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/infra"
	"emptyshell/internal/repositories"
	"emptyshell/internal/services"
	"emptyshell/pkg/utils"
)

var Module = fx.Provide(
	provideTokenManager, provideOpticienRepo, provideAuthService)

func provideTokenManager(cfg *infra.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
}

func provideOpticienRepo(db *gorm.DB) repositories.OpticienRepository {
	return repositories.NewOpticienRepository(db)
}

func provideAuthService(opticienRepo repositories.OpticienRepository, tokens *utils.TokenManager) services.AuthServiceInterface {
	return services.NewAuthService(opticienRepo, tokens)
}
