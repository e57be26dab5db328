package services

import (
	"context"

	"github.com/google/uuid"

	"emptyshell/internal/models/db_models"
	"emptyshell/internal/models/request_models"
	"emptyshell/internal/models/response_models"
	"emptyshell/internal/repositories"
	"emptyshell/pkg/middleware"
	"emptyshell/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterOpticienRequest) (*response_models.OpticienAuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.OpticienAuthResponse, error)
	Profile(ctx context.Context, opticienID uuid.UUID) (*db_models.Opticien, error)
	UpdateProfile(ctx context.Context, opticienID uuid.UUID, request request_models.UpdateOpticienRequest) (*db_models.Opticien, error)
}

type AuthService struct {
	opticienRepo repositories.OpticienRepository
	tokens       *utils.TokenManager
}

func NewAuthService(opticienRepo repositories.OpticienRepository, tokens *utils.TokenManager) AuthServiceInterface {
	return &AuthService{
		opticienRepo: opticienRepo,
		tokens:       tokens,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.RegisterOpticienRequest) (*response_models.OpticienAuthResponse, error) {

	existing, err := a.opticienRepo.FindByEmail(ctx, request.Email)
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

	opticien := &db_models.Opticien{
		Nom:          request.Nom,
		Prenom:       request.Prenom,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Telephone:    request.Telephone,
		Adresse:      request.Adresse,
		Ville:        request.Ville,
		CodePostal:   request.CodePostal,
		Siret:        request.Siret,
	}

	if err := a.opticienRepo.Insert(ctx, opticien); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := a.tokens.CreateToken(opticien.ID, opticien.Email, middleware.UserTypeOpticien)
	if err != nil {
		return nil, err
	}

	return &response_models.OpticienAuthResponse{
		Token:    token,
		Opticien: opticien,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.OpticienAuthResponse, error) {

	opticien, err := a.opticienRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if opticien == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(opticien.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(opticien.ID, opticien.Email, middleware.UserTypeOpticien)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.OpticienAuthResponse{
		Token:    token,
		Opticien: opticien,
	}, nil
}

func (a *AuthService) Profile(ctx context.Context, opticienID uuid.UUID) (*db_models.Opticien, error) {
	opticien, err := a.opticienRepo.FindByID(ctx, opticienID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if opticien == nil {
		return nil, utils.ErrNotFound
	}
	return opticien, nil
}

func (a *AuthService) UpdateProfile(ctx context.Context, opticienID uuid.UUID, request request_models.UpdateOpticienRequest) (*db_models.Opticien, error) {

	opticien, err := a.Profile(ctx, opticienID)
	if err != nil {
		return nil, err
	}

	if request.Nom != nil {
		opticien.Nom = *request.Nom
	}
	if request.Prenom != nil {
		opticien.Prenom = *request.Prenom
	}
	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		opticien.PasswordHash = hashedPassword
	}
	if request.Telephone != nil {
		opticien.Telephone = *request.Telephone
	}
	if request.Adresse != nil {
		opticien.Adresse = *request.Adresse
	}
	if request.Ville != nil {
		opticien.Ville = *request.Ville
	}
	if request.CodePostal != nil {
		opticien.CodePostal = *request.CodePostal
	}
	if request.Siret != nil {
		opticien.Siret = *request.Siret
	}

	if err := a.opticienRepo.Update(ctx, opticien); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return opticien, nil
}
