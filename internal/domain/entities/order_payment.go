package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// OrderPayment settles a completed service order through the payment
// provider.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//
// ProviderPayloadRaw keeps the provider's original response body (JSON) for
// traceability; ProviderPayload is a parsed copy useful for debugging.
type OrderPayment struct {
	ID      string        `json:"id"`
	OrderID string        `json:"order_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
