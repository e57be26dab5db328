package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emptyshell/internal/models/db_models"
)

type OpticienRepository interface {
	Insert(ctx context.Context, opticien *db_models.Opticien) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Opticien, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Opticien, error)
	Update(ctx context.Context, opticien *db_models.Opticien) error
}

type opticienRepository struct {
	db *gorm.DB
}

func NewOpticienRepository(db *gorm.DB) OpticienRepository {
	return &opticienRepository{
		db: db,
	}
}

func (o *opticienRepository) Insert(ctx context.Context, opticien *db_models.Opticien) error {
	return o.db.WithContext(ctx).Create(opticien).Error
}

func (o *opticienRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Opticien, error) {
	var opticien db_models.Opticien
	err := o.db.WithContext(ctx).First(&opticien, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &opticien, nil
}

func (o *opticienRepository) FindByEmail(ctx context.Context, email string) (*db_models.Opticien, error) {
	var opticien db_models.Opticien
	err := o.db.WithContext(ctx).First(&opticien, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &opticien, nil
}

func (o *opticienRepository) Update(ctx context.Context, opticien *db_models.Opticien) error {
	return o.db.WithContext(ctx).Save(opticien).Error
}
