package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/internal/models/response_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/middleware"
	"emptyshell/pkg/utils"
)

type ClientServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterClientRequest) (*response_models.ClientAuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.ClientAuthResponse, error)
	Profile(ctx context.Context, clientID uuid.UUID) (*db_models.Client, error)
	GetData(ctx context.Context, clientID uuid.UUID) (*response_models.ClientDataResponse, error)
	SubmitRequest(ctx context.Context, clientID uuid.UUID, request request_models.SubmitRequestRequest) (*db_models.ClientSubmission, error)
}

type ClientService struct {
	clientRepo    repositories.ClientRepository
	demandeRepo   repositories.ClientScopedRepository[db_models.ClientSubmission]
	cagnotteRepo  repositories.ClientScopedRepository[db_models.Cagnotte]
	paiementRepo  repositories.ClientScopedRepository[db_models.Paiement]
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison]
	produitRepo   repositories.ResourceRepository[db_models.Produit]
	tokens        *utils.TokenManager
}

func NewClientService(
	clientRepo repositories.ClientRepository,
	demandeRepo repositories.ClientScopedRepository[db_models.ClientSubmission],
	cagnotteRepo repositories.ClientScopedRepository[db_models.Cagnotte],
	paiementRepo repositories.ClientScopedRepository[db_models.Paiement],
	livraisonRepo repositories.ClientScopedRepository[db_models.Livraison],
	produitRepo repositories.ResourceRepository[db_models.Produit],
	tokens *utils.TokenManager,
) ClientServiceInterface {
	return &ClientService{
		clientRepo:    clientRepo,
		demandeRepo:   demandeRepo,
		cagnotteRepo:  cagnotteRepo,
		paiementRepo:  paiementRepo,
		livraisonRepo: livraisonRepo,
		produitRepo:   produitRepo,
		tokens:        tokens,
	}
}

func (s *ClientService) Register(ctx context.Context, request request_models.RegisterClientRequest) (*response_models.ClientAuthResponse, error) {

	existing, err := s.clientRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	client := &db_models.Client{
		Nom:          request.Nom,
		Prenom:       request.Prenom,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Telephone:    request.Telephone,
	}

	if err := s.clientRepo.Insert(ctx, client); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := s.tokens.CreateToken(client.ID, client.Email, middleware.UserTypeClient)
	if err != nil {
		return nil, err
	}

	return &response_models.ClientAuthResponse{
		Token:  token,
		Client: client,
	}, nil
}

func (s *ClientService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.ClientAuthResponse, error) {

	client, err := s.clientRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if client == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(client.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(client.ID, client.Email, middleware.UserTypeClient)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.ClientAuthResponse{
		Token:  token,
		Client: client,
	}, nil
}

func (s *ClientService) Profile(ctx context.Context, clientID uuid.UUID) (*db_models.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if client == nil {
		return nil, utils.ErrNotFound
	}
	return client, nil
}

// GetData aggregates everything the portal shows for one client. The
// per-type fetches run concurrently; the chosen optician's catalogue is
// included once the client has picked one.
func (s *ClientService) GetData(ctx context.Context, clientID uuid.UUID) (*response_models.ClientDataResponse, error) {

	client, err := s.Profile(ctx, clientID)
	if err != nil {
		return nil, err
	}

	data := &response_models.ClientDataResponse{
		Client:   client,
		Produits: make([]db_models.Produit, 0),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Cagnottes, err = s.cagnotteRepo.ListByClient(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		data.Paiements, err = s.paiementRepo.ListByClient(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		data.Livraisons, err = s.livraisonRepo.ListByClient(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		data.Submissions, err = s.demandeRepo.ListByClient(gctx, clientID)
		return err
	})
	if client.OpticienID != nil {
		opticienID := *client.OpticienID
		g.Go(func() error {
			var err error
			data.Produits, err = s.produitRepo.ListByOpticien(gctx, opticienID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return data, nil
}

// SubmitRequest records the optician the client picked and opens an
// en_attente submission for them. The client id always comes from the
// verified token.
func (s *ClientService) SubmitRequest(ctx context.Context, clientID uuid.UUID, request request_models.SubmitRequestRequest) (*db_models.ClientSubmission, error) {

	client, err := s.Profile(ctx, clientID)
	if err != nil {
		return nil, err
	}

	opticienID := request.OpticienID
	client.OpticienID = &opticienID
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, utils.ErrDatabaseError
	}

	submission := &db_models.ClientSubmission{
		OpticienID:         opticienID,
		ClientID:           &client.ID,
		NomClient:          client.Nom,
		PrenomClient:       client.Prenom,
		EmailClient:        client.Email,
		TelephoneClient:    client.Telephone,
		OrdonnanceFilename: request.OrdonnanceFilename,
		MutuelleName:       request.MutuelleName,
		MutuelleFilename:   request.MutuelleFilename,
		Statut:             db_models.SubmissionEnAttente,
		Notes:              request.Notes,
	}

	if err := s.demandeRepo.Insert(ctx, submission); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return submission, nil
}
