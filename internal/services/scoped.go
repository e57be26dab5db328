package services

import (
	"context"

	"github.com/google/uuid"

	"emptyshell/internal/repositories"
	"emptyshell/pkg/utils"
)

// OwnedResource is any record that belongs to exactly one opticien.
type OwnedResource interface {
	OwnerID() uuid.UUID
}

// FetchOwned is the ownership gate every get/update/delete passes
// through: load by primary key, then compare the owner against the
// caller. The two-step keeps "doesn't exist" (ErrNotFound) distinct from
// "not yours" (ErrForbidden).
func FetchOwned[T OwnedResource](ctx context.Context, repo repositories.ResourceRepository[T], id uuid.UUID, opticienID uuid.UUID) (*T, error) {
	entity, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entity == nil {
		return nil, utils.ErrNotFound
	}
	if (*entity).OwnerID() != opticienID {
		return nil, utils.ErrForbidden
	}
	return entity, nil
}

// deleteOwned runs the ownership gate and then deletes. A delete that
// removes nothing reports ErrNotFound, so repeating a delete is not a
// second success.
func deleteOwned[T OwnedResource](ctx context.Context, repo repositories.ResourceRepository[T], id uuid.UUID, opticienID uuid.UUID) error {
	if _, err := FetchOwned(ctx, repo, id, opticienID); err != nil {
		return err
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrNotFound
	}
	return nil
}

func listOwned[T any](ctx context.Context, repo repositories.ResourceRepository[T], opticienID uuid.UUID) ([]T, error) {
	entities, err := repo.ListByOpticien(ctx, opticienID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entities, nil
}
