package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IOrderNotifier publishes service order status-change events to interested
// consumers (for example the customer e-mail worker). Publishing is
// best-effort; failures must not roll back the status change.
type IOrderNotifier interface {
	PublishStatusChange(ctx context.Context, order entities.ServiceOrder, oldStatus entities.ServiceStatus) error
}
