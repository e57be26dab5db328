package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/response_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context, opticienID uuid.UUID) (*response_models.DashboardStats, error)
}

type DashboardService struct {
	demandeRepo   repositories.ClientScopedRepository[db_models.ClientSubmission]
	cagnotteRepo  repositories.ClientScopedRepository[db_models.Cagnotte]
	paiementRepo  repositories.ClientScopedRepository[db_models.Paiement]
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison]
}

func NewDashboardService(
	demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission],
	cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte],
	paiementRepo repositories.ClientScopedRepository[db_models.Paiement],
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison],
) DashboardServiceInterface {
	return &DashboardService{
		demandeRepo:   demandeRepo,
		cagnotteRepo:  cagnotteRepo,
		paiementRepo:  paiementRepo,
		livraisonRepo: livraisonRepo,
	}
}

// GetStats fans out the owner-scoped lists concurrently and reduces them
// once all have arrived. Any single fetch failing fails the whole call.
func (s *DashboardService) GetStats(ctx context.Context, opticienID uuid.UUID) (*response_models.DashboardStats, error) {

	var (
		submissions []db_models.ClientSubmission
		cagnottes   []db_models.Cagnotte
		paiements   []db_models.Paiement
		livraisons  []db_models.Livraison
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		submissions, err = s.demandeRepo.ListByOpticien(gctx, opticienID)
		return err
	})
	g.Go(func() error {
		var err error
		cagnottes, err = s.cagnotteRepo.ListByOpticien(gctx, opticienID)
		return err
	})
	g.Go(func() error {
		var err error
		paiements, err = s.paiementRepo.ListByOpticien(gctx, opticienID)
		return err
	})
	g.Go(func() error {
		var err error
		livraisons, err = s.livraisonRepo.ListByOpticien(gctx, opticienID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.DashboardStats{
		Revenue:            decimal.Zero,
		TotalSavingsAmount: decimal.Zero,
	}

	for _, submission := range submissions {
		if submission.Statut == db_models.SubmissionEnAttente {
			stats.NewRequests++
		}
	}

	for _, paiement := range paiements {
		if paiement.Statut == db_models.PaiementPaye {
			stats.Revenue = stats.Revenue.Add(paiement.Montant)
		}
	}

	for _, livraison := range livraisons {
		if livraison.Statut == db_models.LivraisonExpedie {
			stats.Deliveries++
		}
	}

	for _, cagnotte := range cagnottes {
		if cagnotte.Statut == db_models.CagnotteActive {
			stats.ActiveSavings++
			stats.TotalSavingsAmount = stats.TotalSavingsAmount.Add(cagnotte.MontantCollecte)
		}
	}

	return stats, nil
}
