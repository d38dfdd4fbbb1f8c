package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// UpdateStatus is the partial-update path used by the dedicated status
// endpoint; completedAt is stamped only for completing transitions.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus, completedAt *time.Time) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
