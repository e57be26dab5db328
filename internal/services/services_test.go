package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&db_models.Opticien{},
		&db_models.Client{},
		&db_models.ClientSubmission{},
		&db_models.Cagnotte{},
		&db_models.Paiement{},
		&db_models.Livraison{},
		&db_models.Produit{},
	))

	return db
}

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", time.Hour)
}

func newProduitService(db *gorm.DB) ProduitServiceInterface {
	return NewProduitService(repositories.NewResourceRepository[db_models.Produit](db))
}

func newDemandeService(db *gorm.DB) DemandeServiceInterface {
	return NewDemandeService(repositories.NewClientScopedRepository[db_models.ClientSubmission](db))
}

func newCagnotteService(db *gorm.DB) CagnotteServiceInterface {
	return NewCagnotteService(repositories.NewClientScopedRepository[db_models.Cagnotte](db))
}

func newDashboardService(db *gorm.DB) DashboardServiceInterface {
	return NewDashboardService(
		repositories.NewClientScopedRepository[db_models.ClientSubmission](db),
		repositories.NewClientScopedRepository[db_models.Cagnotte](db),
		repositories.NewClientScopedRepository[db_models.Paiement](db),
		repositories.NewClientScopedRepository[db_models.Livraison](db),
	)
}

func newClientService(db *gorm.DB) ClientServiceInterface {
	return NewClientService(
		repositories.NewClientRepository(db),
		repositories.NewClientScopedRepository[db_models.ClientSubmission](db),
		repositories.NewClientScopedRepository[db_models.Cagnotte](db),
		repositories.NewClientScopedRepository[db_models.Paiement](db),
		repositories.NewClientScopedRepository[db_models.Livraison](db),
		repositories.NewResourceRepository[db_models.Produit](db),
		newTestTokens(),
	)
}
