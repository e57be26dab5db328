package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceRepository is the store contract shared by every owned
// resource type. Listing is scoped to the owning opticien in the query
// itself; FindByID is deliberately unscoped so the service layer can
// distinguish "absent" from "not yours".
type ResourceRepository[T any] interface {
	Insert(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	ListByOpticien(ctx context.Context, opticienID uuid.UUID) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ClientScopedRepository adds the client portal's view for entities that
// also carry a client reference.
type ClientScopedRepository[T any] interface {
	ResourceRepository[T]
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]T, error)
}

type resourceRepository[T any] struct {
	db *gorm.DB
}

func NewResourceRepository[T any](db *gorm.DB) ResourceRepository[T] {
	return &resourceRepository[T]{db: db}
}

func NewClientScopedRepository[T any](db *gorm.DB) ClientScopedRepository[T] {
	return &resourceRepository[T]{db: db}
}

func (r *resourceRepository[T]) Insert(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *resourceRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity, nil
}

func (r *resourceRepository[T]) ListByOpticien(ctx context.Context, opticienID uuid.UUID) ([]T, error) {
	entities := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("opticien_id = ?", opticienID).
		Order("created_at DESC").
		Find(&entities).Error

	if err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *resourceRepository[T]) ListByClient(ctx context.Context, clientID uuid.UUID) ([]T, error) {
	entities := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&entities).Error

	if err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *resourceRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete reports whether a row was actually removed so callers can map
// a no-op delete to a not-found answer.
func (r *resourceRepository[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
