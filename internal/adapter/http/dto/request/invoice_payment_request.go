package request

import "encoding/json"

// InvoicePaymentCreateRequest is the optional envelope of the pay-invoice route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A bare Mercado Pago body without the envelope is accepted too.
type InvoicePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
