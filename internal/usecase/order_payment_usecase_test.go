package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderPaymentUseCase_CreateForOrder(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForOrder(context.Background(), "   ", nil)
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForOrder(context.Background(), "os-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("order not completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceStatusInProgress}, nil)

		_, err := uc.CreateForOrder(context.Background(), "os-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderNotCompleted) {
			t.Fatalf("expected ErrOrderNotCompleted, got %v", err)
		}
	})

	t.Run("charges the stored total, not the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceStatusCompleted, TotalCost: 250}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]interface{}
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid gateway payload: %v", err)
				}
				if req["transaction_amount"] != 250.0 {
					t.Fatalf("expected amount 250, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "os-1" {
					t.Fatalf("expected external_reference os-1, got %v", req["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				if p.Amount != 250 || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			})

		created, err := uc.CreateForOrder(context.Background(), "os-1",
			json.RawMessage(`{"transaction_amount": 1, "payment_method_id": "pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-1" || created.OrderID != "os-1" {
			t.Fatalf("unexpected payment: %+v", created)
		}
	})

	t.Run("provider denial recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceStatusCompleted, TotalCost: 99}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-2", "rejected", json.RawMessage(`{"id":"mp-2","status":"rejected"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				return p, nil
			})

		created, err := uc.CreateForOrder(context.Background(), "os-1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied, got %q", created.Status)
		}
	})
}

func TestOrderPaymentUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), "")
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		uc := NewOrderPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").
			Return([]entities.OrderPayment{{ID: "mp-1", OrderID: "os-1"}}, nil)

		payments, err := uc.ListByOrderID(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 || payments[0].ID != "mp-1" {
			t.Fatalf("unexpected payments: %+v", payments)
		}
	})
}
