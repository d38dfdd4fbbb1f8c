package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Vehicle{Brand: "Fiat"})
		if !errors.Is(err, ErrInvalidVehicleReq) {
			t.Fatalf("expected ErrInvalidVehicleReq, got %v", err)
		}
	})

	t.Run("model year must have four digits", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		v := entities.Vehicle{Brand: "Fiat", Model: "Uno", ModelYear: 99, LicensePlate: "ABC1D23", CustomerID: "c1"}
		_, err := uc.Create(context.Background(), v)
		if !errors.Is(err, ErrInvalidModelYear) {
			t.Fatalf("expected ErrInvalidModelYear, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers)

		customers.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Customer{}, nil)

		v := entities.Vehicle{Brand: "Fiat", Model: "Uno", ModelYear: 2020, LicensePlate: "ABC1D23", CustomerID: "ghost"}
		_, err := uc.Create(context.Background(), v)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success assigns id and trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers)

		customers.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Customer{ID: "c1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ID == "" {
					t.Fatal("expected generated id")
				}
				if v.Brand != "Fiat" || v.LicensePlate != "ABC1D23" {
					t.Fatalf("expected trimmed fields, got %+v", v)
				}
				return v, nil
			})

		v := entities.Vehicle{Brand: " Fiat ", Model: "Uno", ModelYear: 2020, LicensePlate: " ABC1D23 ", CustomerID: "c1"}
		created, err := uc.Create(context.Background(), v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CustomerID != "c1" {
			t.Fatalf("unexpected vehicle: %+v", created)
		}
	})
}

func TestVehicleUseCase_ListByCustomerID(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.ListByCustomerID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("scoped to the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().ListByCustomerID(gomock.Any(), "c1").
			Return([]entities.Vehicle{{ID: "v1", CustomerID: "c1"}}, nil)

		vehicles, err := uc.ListByCustomerID(context.Background(), "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vehicles) != 1 || vehicles[0].ID != "v1" {
			t.Fatalf("unexpected vehicles: %+v", vehicles)
		}
	})
}
