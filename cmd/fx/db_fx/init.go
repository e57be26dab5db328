package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"emptyshell/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideDB)

func provideDB(cfg *infra.Config) *gorm.DB {
	return infra.InitDatabase(cfg)
}
