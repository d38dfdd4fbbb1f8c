package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type OrderPaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromOrderPayments(ps []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromOrderPayment(p))
	}
	return out
}
