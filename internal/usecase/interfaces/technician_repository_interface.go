package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// ITechnicianRepository abstracts DynamoDB persistence for Technician.
type ITechnicianRepository interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
	Update(ctx context.Context, t entities.Technician) (entities.Technician, error)
	Delete(ctx context.Context, id string) (bool, error)
}
