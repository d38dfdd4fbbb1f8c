package payments

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMercadoPagoGateway_MockCreateEchoesRequest(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("expected mock gateway, got err %v", err)
	}

	payload := json.RawMessage(`{"external_reference":"os-1","transaction_amount":250.5}`)
	id, status, resp, err := g.CreatePayment(context.Background(), payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id == "" {
		t.Error("expected a provider payment id")
	}
	if status != "approved" {
		t.Errorf("expected approved status, got %q", status)
	}

	var body map[string]any
	if err := json.Unmarshal(resp, &body); err != nil {
		t.Fatalf("provider response is not json: %v", err)
	}
	if body["external_reference"] != "os-1" {
		t.Errorf("expected external_reference echoed, got %v", body["external_reference"])
	}
	if body["status_detail"] != "accredited" {
		t.Errorf("expected accredited detail, got %v", body["status_detail"])
	}
}

func TestMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if _, err := NewMercadoPagoGateway(""); err != ErrMissingMercadoPagoAccessToken {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}
