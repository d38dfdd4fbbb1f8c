package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceOrderNotFound      = errors.New("service order not found")
	ErrInvalidServiceOrderID     = errors.New("invalid service order id")
	ErrInvalidServiceStatus      = errors.New("invalid service order status")
	ErrVehicleNotOwnedByCustomer = errors.New("vehicle does not belong to customer")
	ErrInsufficientStock         = errors.New("insufficient part stock")
)

// OrderPartInput is a part line as submitted by clients: part reference and
// quantity only. The line is priced here from the catalog; client-sent unit
// prices are never trusted.
type OrderPartInput struct {
	PartID   string
	Quantity int
}

// OrderInput is a full create/update submission for a service order.
type OrderInput struct {
	CustomerID   string
	VehicleID    string
	TechnicianID string
	Description  string
	Status       entities.ServiceStatus
	ServiceItems []entities.ServiceItem
	Parts        []OrderPartInput
}

// EstimateResult is the outcome of a dry-run composition: either a
// normalized submission with its computed total, or the field-keyed
// validation failures that block it. Reference lists that failed to load are
// reported as non-blocking notices.
type EstimateResult struct {
	Submission  composer.Submission
	FieldErrors map[string]string
	LoadErrors  []*composer.ReferenceDataLoadError
}

// IServiceOrderUseCase exposes the service order aggregate: CRUD, the
// partial status-update path, and the composer-backed estimate dry run.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in OrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, id string, in OrderInput) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	Estimate(ctx context.Context, draft composer.OrderDraft) (EstimateResult, error)
}

type ServiceOrderUseCase struct {
	repo           interfaces.IServiceOrderRepository
	customerRepo   interfaces.ICustomerRepository
	vehicleRepo    interfaces.IVehicleRepository
	technicianRepo interfaces.ITechnicianRepository
	partRepo       interfaces.IPartRepository
	refLoader      composer.ReferenceLoader
	notifier       interfaces.IOrderNotifier
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	customerRepo interfaces.ICustomerRepository,
	vehicleRepo interfaces.IVehicleRepository,
	technicianRepo interfaces.ITechnicianRepository,
	partRepo interfaces.IPartRepository,
	refLoader composer.ReferenceLoader,
	notifier interfaces.IOrderNotifier,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:           repo,
		customerRepo:   customerRepo,
		vehicleRepo:    vehicleRepo,
		technicianRepo: technicianRepo,
		partRepo:       partRepo,
		refLoader:      refLoader,
		notifier:       notifier,
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in OrderInput) (entities.ServiceOrder, error) {
	customer, vehicle, technician, err := u.resolveAssociations(ctx, in)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	order := entities.ServiceOrder{
		ID:           uuid.NewString(),
		CustomerID:   customer.ID,
		VehicleID:    vehicle.ID,
		TechnicianID: technician.ID,
		Description:  strings.TrimSpace(in.Description),
		Status:       entities.ServiceStatusPending,
		CreatedAt:    time.Now().UTC(),
		ServiceItems: in.ServiceItems,
	}
	if in.Status != "" && entities.ValidServiceStatus(in.Status) {
		order.Status = in.Status
	}

	order.Parts, err = u.consumeParts(ctx, in.Parts)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	order.UpdateTotalCost()
	return u.repo.Create(ctx, order)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

// Update replaces the order's description, technician, line items and parts.
// Parts are re-priced from the catalog; stock consumed by the previous lines
// is returned before the new lines are taken.
func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in OrderInput) (entities.ServiceOrder, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	order.Description = strings.TrimSpace(in.Description)

	if in.TechnicianID != "" && in.TechnicianID != order.TechnicianID {
		technician, err := u.technicianRepo.GetByID(ctx, in.TechnicianID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if technician.ID == "" {
			return entities.ServiceOrder{}, ErrTechnicianNotFound
		}
		order.TechnicianID = technician.ID
	}

	if in.ServiceItems != nil {
		order.ServiceItems = in.ServiceItems
	}

	if in.Parts != nil {
		if err := u.restoreStock(ctx, order.Parts); err != nil {
			return entities.ServiceOrder{}, err
		}
		order.Parts, err = u.consumeParts(ctx, in.Parts)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	order.UpdateTotalCost()

	updated, err := u.repo.Update(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if in.Status != "" && in.Status != updated.Status {
		return u.UpdateStatus(ctx, updated.ID, in.Status)
	}
	return updated, nil
}

// UpdateStatus is the partial-update path behind PUT /:id/status. Completing
// an order stamps completedAt; every transition is published to the order
// notifier, best-effort.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if !entities.ValidServiceStatus(status) {
		return entities.ServiceOrder{}, ErrInvalidServiceStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	oldStatus := current.Status

	var completedAt *time.Time
	if status == entities.ServiceStatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, completedAt)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}

	if u.notifier != nil && oldStatus != updated.Status {
		if err := u.notifier.PublishStatusChange(ctx, updated, oldStatus); err != nil {
			log.Printf("[order][usecase] status change notification failed order_id=%s err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceOrderNotFound
	}
	return nil
}

// Estimate runs the draft through the composer without persisting anything:
// same validation, same pricing, no side effects.
func (u *ServiceOrderUseCase) Estimate(ctx context.Context, draft composer.OrderDraft) (EstimateResult, error) {
	session := composer.NewSession(ctx, u.refLoader)
	session.Composer.Initialize(&draft)

	result := EstimateResult{LoadErrors: session.LoadErrors()}

	sub, err := session.Composer.BuildSubmissionPayload()
	if err != nil {
		var verr *composer.ValidationError
		if errors.As(err, &verr) {
			result.FieldErrors = verr.Fields
			return result, nil
		}
		return EstimateResult{}, err
	}
	result.Submission = sub
	return result, nil
}

func (u *ServiceOrderUseCase) resolveAssociations(ctx context.Context, in OrderInput) (entities.Customer, entities.Vehicle, entities.Technician, error) {
	var (
		zc entities.Customer
		zv entities.Vehicle
		zt entities.Technician
	)

	customerID := strings.TrimSpace(in.CustomerID)
	vehicleID := strings.TrimSpace(in.VehicleID)
	technicianID := strings.TrimSpace(in.TechnicianID)
	if customerID == "" {
		return zc, zv, zt, ErrInvalidCustomerID
	}
	if vehicleID == "" {
		return zc, zv, zt, ErrInvalidVehicleID
	}
	if technicianID == "" {
		return zc, zv, zt, ErrInvalidTechnicianID
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return zc, zv, zt, err
	}
	if customer.ID == "" {
		return zc, zv, zt, ErrCustomerNotFound
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return zc, zv, zt, err
	}
	if vehicle.ID == "" {
		return zc, zv, zt, ErrVehicleNotFound
	}
	// The composer restricts the selectable set, but a stale client selection
	// can still arrive here; the cross-check is authoritative at this boundary.
	if vehicle.CustomerID != customer.ID {
		return zc, zv, zt, ErrVehicleNotOwnedByCustomer
	}

	technician, err := u.technicianRepo.GetByID(ctx, technicianID)
	if err != nil {
		return zc, zv, zt, err
	}
	if technician.ID == "" {
		return zc, zv, zt, ErrTechnicianNotFound
	}

	return customer, vehicle, technician, nil
}

// consumeParts prices the submitted part lines from the catalog and takes
// their quantities out of stock.
func (u *ServiceOrderUseCase) consumeParts(ctx context.Context, inputs []OrderPartInput) ([]entities.ServiceOrderPart, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	lines := make([]entities.ServiceOrderPart, 0, len(inputs))
	for _, in := range inputs {
		part, err := u.partRepo.GetByID(ctx, in.PartID)
		if err != nil {
			return nil, err
		}
		if part.ID == "" {
			return nil, ErrPartNotFound
		}
		if part.Stock < in.Quantity {
			return nil, ErrInsufficientStock
		}
		part.Stock -= in.Quantity
		if _, err := u.partRepo.Update(ctx, part); err != nil {
			return nil, err
		}
		lines = append(lines, entities.ServiceOrderPart{
			PartID:    part.ID,
			Quantity:  in.Quantity,
			UnitPrice: part.UnitPrice,
		})
	}
	return lines, nil
}

func (u *ServiceOrderUseCase) restoreStock(ctx context.Context, lines []entities.ServiceOrderPart) error {
	for _, line := range lines {
		part, err := u.partRepo.GetByID(ctx, line.PartID)
		if err != nil {
			return err
		}
		if part.ID == "" {
			continue
		}
		part.Stock += line.Quantity
		if _, err := u.partRepo.Update(ctx, part); err != nil {
			return err
		}
	}
	return nil
}
