package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for the parts inventory.
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, p entities.Part) (entities.Part, error)
	Delete(ctx context.Context, id string) (bool, error)
}
