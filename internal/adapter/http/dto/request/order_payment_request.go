package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload for the settle-order route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; amount and external reference are filled in server-side from the
// order.
type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
