package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IWorkServiceRepository abstracts DynamoDB persistence for the labor
// catalog.
type IWorkServiceRepository interface {
	Create(ctx context.Context, w entities.WorkService) (entities.WorkService, error)
	GetByID(ctx context.Context, id string) (entities.WorkService, error)
	List(ctx context.Context) ([]entities.WorkService, error)
	Update(ctx context.Context, w entities.WorkService) (entities.WorkService, error)
	Delete(ctx context.Context, id string) (bool, error)
}
