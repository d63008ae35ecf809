package interfaces

import "context"

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The pipeline only needs to verify a payment referenced by a webhook: the
// provider-side status and the external reference linking it back to a quote.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, paymentID string) (status string, externalReference string, err error)
}
