package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
)

type ClientRepository interface {
	Insert(ctx context.Context, client *db_models.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Client, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Client, error)
	Update(ctx context.Context, client *db_models.Client) error
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{
		db: db,
	}
}

func (r *clientRepository) Insert(ctx context.Context, client *db_models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Client, error) {
	var client db_models.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*db_models.Client, error) {
	var client db_models.Client
	err := r.db.WithContext(ctx).First(&client, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) Update(ctx context.Context, client *db_models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}
