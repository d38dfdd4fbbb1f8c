package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"
)

func TestPartUseCase_Create(t *testing.T) {
	t.Run("rejects blank name or code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewPartUseCase(mock_interfaces.NewMockIPartRepository(ctrl))

		_, err := uc.Create(context.Background(), entities.Part{Name: "  ", Code: "BRK-01"})
		if !errors.Is(err, ErrInvalidPartReq) {
			t.Fatalf("expected ErrInvalidPartReq, got %v", err)
		}
	})

	t.Run("rejects negative price and stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewPartUseCase(mock_interfaces.NewMockIPartRepository(ctrl))

		_, err := uc.Create(context.Background(), entities.Part{Name: "Brake pad", Code: "BRK-01", UnitPrice: -1})
		if !errors.Is(err, ErrInvalidUnitPrice) {
			t.Fatalf("expected ErrInvalidUnitPrice, got %v", err)
		}

		_, err = uc.Create(context.Background(), entities.Part{Name: "Brake pad", Code: "BRK-01", Stock: -3})
		if !errors.Is(err, ErrInvalidStock) {
			t.Fatalf("expected ErrInvalidStock, got %v", err)
		}
	})

	t.Run("assigns id and trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Part) (entities.Part, error) {
				if p.ID == "" {
					t.Error("expected an assigned id")
				}
				if p.Name != "Brake pad" || p.Code != "BRK-01" {
					t.Errorf("expected trimmed fields, got %+v", p)
				}
				return p, nil
			})

		created, err := uc.Create(context.Background(), entities.Part{Name: " Brake pad ", Code: " BRK-01 ", UnitPrice: 80, Stock: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.UnitPrice != 80 || created.Stock != 5 {
			t.Errorf("unexpected part: %+v", created)
		}
	})
}

func TestPartUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewPartUseCase(mock_interfaces.NewMockIPartRepository(ctrl))

		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidPartID) {
			t.Fatalf("expected ErrInvalidPartID, got %v", err)
		}
	})

	t.Run("missing part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Part{}, nil)

		if _, err := uc.GetByID(context.Background(), "p-404"); !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})
}

func TestPartUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPartRepository(ctrl)
	uc := NewPartUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), "p-1").Return(false, nil)

	if err := uc.Delete(context.Background(), "p-1"); !errors.Is(err, ErrPartNotFound) {
		t.Fatalf("expected ErrPartNotFound, got %v", err)
	}
}
