package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrOrderPaymentNotFound      = errors.New("order payment not found")
	ErrOrderNotCompleted         = errors.New("service order not completed")
	ErrInvalidPaymentPayload     = errors.New("invalid payment payload")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IOrderPaymentUseCase settles a completed service order through the payment
// provider and records the result.
type IOrderPaymentUseCase interface {
	CreateForOrder(ctx context.Context, orderID string, payload json.RawMessage) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo      interfaces.IOrderPaymentRepository
	orderRepo interfaces.IServiceOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orderRepo interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

// CreateForOrder charges the order's computed total. The amount always comes
// from the stored order, never from the caller; the payload only carries
// payment method and payer details for the provider.
func (u *OrderPaymentUseCase) CreateForOrder(ctx context.Context, orderID string, payload json.RawMessage) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidServiceOrderID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.OrderPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.OrderPayment{}, ErrPaymentGatewayUnavailable
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrServiceOrderNotFound
	}
	if order.Status != entities.ServiceStatusCompleted {
		return entities.OrderPayment{}, ErrOrderNotCompleted
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return entities.OrderPayment{}, ErrInvalidPaymentPayload
	}
	if req == nil {
		req = map[string]any{}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = order.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Service order %s", order.ID)
	}
	// The stored order is the source of truth for the amount.
	req["transaction_amount"] = order.TotalCost
	if b, err := json.Marshal(req); err == nil {
		payload = b
	}

	log.Printf("[payment][usecase] charging order order_id=%s amount=%.2f", order.ID, order.TotalCost)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", order.ID, err)
		return entities.OrderPayment{}, err
	}

	status := entities.PaymentStatusApproved
	if providerStatus != "" && providerStatus != "approved" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", order.ID, err)
	}

	p := entities.OrderPayment{
		ID:                 providerPaymentID,
		OrderID:            order.ID,
		Amount:             order.TotalCost,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	log.Printf("[payment][usecase] payment recorded order_id=%s payment_id=%s status=%s", order.ID, created.ID, created.Status)
	return created, nil
}

func (u *OrderPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidServiceOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
