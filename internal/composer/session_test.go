package composer

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
)

type fakeLoader struct {
	customers    []entities.Customer
	vehicles     []entities.Vehicle
	technicians  []entities.Technician
	parts        []entities.Part
	workServices []entities.WorkService

	partsErr    error
	vehiclesErr error

	vehicleCalls int
}

func (f *fakeLoader) ListCustomers(context.Context) ([]entities.Customer, error) {
	return f.customers, nil
}

func (f *fakeLoader) ListVehicles(context.Context) ([]entities.Vehicle, error) {
	f.vehicleCalls++
	if f.vehiclesErr != nil {
		return nil, f.vehiclesErr
	}
	return f.vehicles, nil
}

func (f *fakeLoader) ListTechnicians(context.Context) ([]entities.Technician, error) {
	return f.technicians, nil
}

func (f *fakeLoader) ListParts(context.Context) ([]entities.Part, error) {
	if f.partsErr != nil {
		return nil, f.partsErr
	}
	return f.parts, nil
}

func (f *fakeLoader) ListWorkServices(context.Context) ([]entities.WorkService, error) {
	return f.workServices, nil
}

func TestLoadReferenceData(t *testing.T) {
	t.Run("all lists resolve", func(t *testing.T) {
		loader := &fakeLoader{
			customers: []entities.Customer{{ID: "c1"}},
			vehicles:  []entities.Vehicle{{ID: "v1", CustomerID: "c1"}},
			parts:     []entities.Part{{ID: "p1"}},
		}
		refs, errs := LoadReferenceData(context.Background(), loader)
		if len(errs) != 0 {
			t.Fatalf("unexpected load errors: %v", errs)
		}
		if len(refs.Customers) != 1 || len(refs.Vehicles) != 1 || len(refs.Parts) != 1 {
			t.Fatalf("unexpected snapshot: %+v", refs)
		}
	})

	t.Run("failed list degrades to empty", func(t *testing.T) {
		cause := errors.New("dynamo down")
		loader := &fakeLoader{
			customers: []entities.Customer{{ID: "c1"}},
			partsErr:  cause,
		}
		refs, errs := LoadReferenceData(context.Background(), loader)
		if len(errs) != 1 {
			t.Fatalf("expected 1 load error, got %v", errs)
		}
		if errs[0].List != "parts" || !errors.Is(errs[0], cause) {
			t.Fatalf("unexpected load error: %v", errs[0])
		}
		if len(refs.Parts) != 0 {
			t.Fatalf("failed list must degrade to empty, got %+v", refs.Parts)
		}
		if len(refs.Customers) != 1 {
			t.Fatalf("healthy lists must still resolve")
		}
	})
}

func TestSessionSelectCustomer(t *testing.T) {
	t.Run("refreshes vehicle set", func(t *testing.T) {
		loader := &fakeLoader{
			vehicles: []entities.Vehicle{
				{ID: "v1", CustomerID: "c1"},
				{ID: "v2", CustomerID: "c2"},
			},
		}
		s := NewSession(context.Background(), loader)
		if err := s.SelectCustomer(context.Background(), "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := s.Composer.SelectableVehicles()
		if len(got) != 1 || got[0].ID != "v1" {
			t.Fatalf("expected [v1], got %+v", got)
		}
	})

	t.Run("fetch failure keeps snapshot-derived set", func(t *testing.T) {
		loader := &fakeLoader{
			vehicles: []entities.Vehicle{{ID: "v1", CustomerID: "c1"}},
		}
		s := NewSession(context.Background(), loader)
		loader.vehiclesErr = errors.New("dynamo down")

		lerr := s.SelectCustomer(context.Background(), "c1")
		if lerr == nil || lerr.List != "vehicles" {
			t.Fatalf("expected vehicles load error, got %v", lerr)
		}
		got := s.Composer.SelectableVehicles()
		if len(got) != 1 || got[0].ID != "v1" {
			t.Fatalf("expected snapshot-derived set to survive, got %+v", got)
		}
	})

	t.Run("unset customer skips the fetch", func(t *testing.T) {
		loader := &fakeLoader{}
		s := NewSession(context.Background(), loader)
		calls := loader.vehicleCalls
		if err := s.SelectCustomer(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loader.vehicleCalls != calls {
			t.Fatalf("expected no vehicle fetch for unset customer")
		}
		if len(s.Composer.SelectableVehicles()) != 0 {
			t.Fatalf("expected empty vehicle set")
		}
	})
}
