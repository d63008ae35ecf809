package request

import (
	"encoding/json"
	"strings"
)

// PaymentWebhookRequest is the Mercado Pago webhook body. Only the payment
// id is taken from it; everything else is re-fetched from the provider, the
// webhook body is never trusted as payment state.
//
// data.id arrives as a number or a string depending on the event version, so
// it is kept raw and normalized in ResolvePaymentID.
type PaymentWebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

func (r PaymentWebhookRequest) IsPaymentEvent() bool {
	return strings.EqualFold(strings.TrimSpace(r.Type), "payment")
}

func (r PaymentWebhookRequest) ResolvePaymentID() string {
	raw := strings.TrimSpace(string(r.Data.ID))
	raw = strings.Trim(raw, `"`)
	if raw == "null" {
		return ""
	}
	return strings.TrimSpace(raw)
}
