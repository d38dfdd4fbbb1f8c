package usecase

import (
	"context"

	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// ReferenceSource adapts the entity repositories to the composer's
// ReferenceLoader contract. A caching decorator can be layered on top of it
// at wiring time.
type ReferenceSource struct {
	customers    interfaces.ICustomerRepository
	vehicles     interfaces.IVehicleRepository
	technicians  interfaces.ITechnicianRepository
	parts        interfaces.IPartRepository
	workServices interfaces.IWorkServiceRepository
}

var _ composer.ReferenceLoader = (*ReferenceSource)(nil)

func NewReferenceSource(
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	technicians interfaces.ITechnicianRepository,
	parts interfaces.IPartRepository,
	workServices interfaces.IWorkServiceRepository,
) *ReferenceSource {
	return &ReferenceSource{
		customers:    customers,
		vehicles:     vehicles,
		technicians:  technicians,
		parts:        parts,
		workServices: workServices,
	}
}

func (s *ReferenceSource) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return s.customers.List(ctx)
}

func (s *ReferenceSource) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *ReferenceSource) ListTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return s.technicians.List(ctx)
}

func (s *ReferenceSource) ListParts(ctx context.Context) ([]entities.Part, error) {
	return s.parts.List(ctx)
}

func (s *ReferenceSource) ListWorkServices(ctx context.Context) ([]entities.WorkService, error) {
	return s.workServices.List(ctx)
}
