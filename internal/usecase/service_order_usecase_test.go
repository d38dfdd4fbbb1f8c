package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	repo      *mock_interfaces.MockIServiceOrderRepository
	customers *mock_interfaces.MockICustomerRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	techs     *mock_interfaces.MockITechnicianRepository
	parts     *mock_interfaces.MockIPartRepository
	notifier  *mock_interfaces.MockIOrderNotifier
}

func newOrderUseCase(ctrl *gomock.Controller) (*ServiceOrderUseCase, orderMocks) {
	m := orderMocks{
		repo:      mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		techs:     mock_interfaces.NewMockITechnicianRepository(ctrl),
		parts:     mock_interfaces.NewMockIPartRepository(ctrl),
		notifier:  mock_interfaces.NewMockIOrderNotifier(ctrl),
	}
	uc := NewServiceOrderUseCase(m.repo, m.customers, m.vehicles, m.techs, m.parts, nil, m.notifier)
	return uc, m
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newOrderUseCase(ctrl)

		_, err := uc.Create(context.Background(), OrderInput{VehicleID: "v1", TechnicianID: "t1"})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("vehicle of another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v2").Return(entities.Vehicle{ID: "v2", CustomerID: "c2"}, nil)

		_, err := uc.Create(context.Background(), OrderInput{CustomerID: "c1", VehicleID: "v2", TechnicianID: "t1"})
		if !errors.Is(err, ErrVehicleNotOwnedByCustomer) {
			t.Fatalf("expected ErrVehicleNotOwnedByCustomer, got %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vehicle{ID: "v1", CustomerID: "c1"}, nil)
		m.techs.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Technician{ID: "t1"}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Part{ID: "p1", UnitPrice: 25.5, Stock: 1}, nil)

		in := OrderInput{
			CustomerID:   "c1",
			VehicleID:    "v1",
			TechnicianID: "t1",
			Parts:        []OrderPartInput{{PartID: "p1", Quantity: 3}},
		}
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("success prices parts and computes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.customers.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vehicle{ID: "v1", CustomerID: "c1"}, nil)
		m.techs.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Technician{ID: "t1"}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Part{ID: "p1", UnitPrice: 40, Stock: 5}, nil)
		m.parts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.Stock != 3 {
					t.Fatalf("expected stock decremented to 3, got %d", p.Stock)
				}
				return p, nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				return o, nil
			})

		in := OrderInput{
			CustomerID:   "c1",
			VehicleID:    "v1",
			TechnicianID: "t1",
			Description:  " rear brakes ",
			ServiceItems: []entities.ServiceItem{{Description: "Brake pads", LaborCost: 120, Quantity: 1}},
			Parts:        []OrderPartInput{{PartID: "p1", Quantity: 2}},
		}
		created, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
		if created.Status != entities.ServiceStatusPending {
			t.Fatalf("expected PENDING, got %q", created.Status)
		}
		if created.Description != "rear brakes" {
			t.Fatalf("expected trimmed description, got %q", created.Description)
		}
		if len(created.Parts) != 1 || created.Parts[0].UnitPrice != 40 {
			t.Fatalf("expected catalog-priced part, got %+v", created.Parts)
		}
		if created.TotalCost != 200 {
			t.Fatalf("expected total 200, got %v", created.TotalCost)
		}
	})
}

func TestServiceOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newOrderUseCase(ctrl)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "DONE")
		if !errors.Is(err, ErrInvalidServiceStatus) {
			t.Fatalf("expected ErrInvalidServiceStatus, got %v", err)
		}
	})

	t.Run("completing stamps completedAt and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceStatusInProgress}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.ServiceStatusCompleted, gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, id string, status entities.ServiceStatus, completedAt *time.Time) (entities.ServiceOrder, error) {
				return entities.ServiceOrder{ID: id, Status: status, CompletedAt: completedAt}, nil
			})
		m.notifier.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any(), entities.ServiceStatusInProgress).Return(nil)

		updated, err := uc.UpdateStatus(context.Background(), "os-1", entities.ServiceStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CompletedAt == nil {
			t.Fatal("expected completedAt to be stamped")
		}
	})

	t.Run("notifier failure does not fail the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceStatusPending}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.ServiceStatusCanceled, gomock.Nil()).
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceStatusCanceled}, nil)
		m.notifier.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any(), entities.ServiceStatusPending).
			Return(errors.New("broker down"))

		updated, err := uc.UpdateStatus(context.Background(), "os-1", entities.ServiceStatusCanceled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ServiceStatusCanceled {
			t.Fatalf("expected CANCELED, got %q", updated.Status)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	t.Run("replacing parts restores then consumes stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrderUseCase(ctrl)

		existing := entities.ServiceOrder{
			ID:           "os-1",
			CustomerID:   "c1",
			VehicleID:    "v1",
			TechnicianID: "t1",
			Status:       entities.ServiceStatusPending,
			Parts:        []entities.ServiceOrderPart{{PartID: "p1", Quantity: 2, UnitPrice: 40}},
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(existing, nil)

		// Old line returned to stock.
		m.parts.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Part{ID: "p1", UnitPrice: 40, Stock: 3}, nil)
		m.parts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.Stock != 5 {
					t.Fatalf("expected stock restored to 5, got %d", p.Stock)
				}
				return p, nil
			})

		// New line consumed.
		m.parts.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Part{ID: "p2", UnitPrice: 10, Stock: 4}, nil)
		m.parts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.Stock != 3 {
					t.Fatalf("expected stock consumed to 3, got %d", p.Stock)
				}
				return p, nil
			})

		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if len(o.Parts) != 1 || o.Parts[0].PartID != "p2" || o.Parts[0].UnitPrice != 10 {
					t.Fatalf("unexpected parts: %+v", o.Parts)
				}
				if o.TotalCost != 10 {
					t.Fatalf("expected recomputed total 10, got %v", o.TotalCost)
				}
				return o, nil
			})

		_, err := uc.Update(context.Background(), "os-1", OrderInput{
			Parts: []OrderPartInput{{PartID: "p2", Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_Estimate(t *testing.T) {
	refs := staticLoader{
		customers: []entities.Customer{{ID: "c1", Name: "Ana"}},
		vehicles:  []entities.Vehicle{{ID: "v1", CustomerID: "c1"}, {ID: "v2", CustomerID: "c2"}},
		techs:     []entities.Technician{{ID: "t1", Name: "Rui"}},
		parts:     []entities.Part{{ID: "p1", UnitPrice: 40, Stock: 5}},
	}

	t.Run("valid draft yields priced submission", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, refs, nil)

		res, err := uc.Estimate(context.Background(), composer.OrderDraft{
			CustomerID:   "c1",
			VehicleID:    "v1",
			TechnicianID: "t1",
			ServiceItems: []entities.ServiceItem{{Description: "Oil change", LaborCost: 120, Quantity: 1}},
			Parts:        []entities.ServiceOrderPart{{PartID: "p1", Quantity: 2, UnitPrice: 40}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.FieldErrors) != 0 {
			t.Fatalf("unexpected field errors: %v", res.FieldErrors)
		}
		if res.Submission.TotalCost != 200 {
			t.Fatalf("expected total 200, got %v", res.Submission.TotalCost)
		}
		if len(res.Submission.Parts) != 1 || res.Submission.Parts[0].PartID != "p1" {
			t.Fatalf("unexpected submission parts: %+v", res.Submission.Parts)
		}
	})

	t.Run("cross-customer vehicle reported as field error", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, refs, nil)

		res, err := uc.Estimate(context.Background(), composer.OrderDraft{
			CustomerID:   "c1",
			VehicleID:    "v2",
			TechnicianID: "t1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FieldErrors[composer.ErrorKeyOrder] == "" {
			t.Fatalf("expected order-level error, got %v", res.FieldErrors)
		}
	})
}

// staticLoader is an in-memory ReferenceLoader for estimate tests.
type staticLoader struct {
	customers []entities.Customer
	vehicles  []entities.Vehicle
	techs     []entities.Technician
	parts     []entities.Part
	services  []entities.WorkService
}

func (s staticLoader) ListCustomers(context.Context) ([]entities.Customer, error) {
	return s.customers, nil
}

func (s staticLoader) ListVehicles(context.Context) ([]entities.Vehicle, error) {
	return s.vehicles, nil
}

func (s staticLoader) ListTechnicians(context.Context) ([]entities.Technician, error) {
	return s.techs, nil
}

func (s staticLoader) ListParts(context.Context) ([]entities.Part, error) {
	return s.parts, nil
}

func (s staticLoader) ListWorkServices(context.Context) ([]entities.WorkService, error) {
	return s.services, nil
}
