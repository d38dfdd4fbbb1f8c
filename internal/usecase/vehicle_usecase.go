package usecase

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrInvalidVehicleReq = errors.New("invalid vehicle data")
	ErrInvalidModelYear  = errors.New("invalid model year")
)

// IVehicleUseCase exposes vehicle registry operations. Every vehicle belongs
// to exactly one customer.
type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo         interfaces.IVehicleRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customerRepo interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := u.validate(ctx, &v); err != nil {
		return entities.Vehicle{}, err
	}
	v.ID = uuid.NewString()
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *VehicleUseCase) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.ID = strings.TrimSpace(v.ID)
	if v.ID == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if err := u.validate(ctx, &v); err != nil {
		return entities.Vehicle{}, err
	}
	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	return nil
}

func (u *VehicleUseCase) validate(ctx context.Context, v *entities.Vehicle) error {
	v.Brand = strings.TrimSpace(v.Brand)
	v.Model = strings.TrimSpace(v.Model)
	v.LicensePlate = strings.TrimSpace(v.LicensePlate)
	v.CustomerID = strings.TrimSpace(v.CustomerID)
	if v.Brand == "" || v.Model == "" || v.LicensePlate == "" || v.CustomerID == "" {
		return ErrInvalidVehicleReq
	}
	// 4-digit year.
	if v.ModelYear < 1000 || v.ModelYear > 9999 {
		return ErrInvalidModelYear
	}
	owner, err := u.customerRepo.GetByID(ctx, v.CustomerID)
	if err != nil {
		return err
	}
	if owner.ID == "" {
		return ErrCustomerNotFound
	}
	return nil
}
