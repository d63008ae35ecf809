package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentID = errors.New("invalid payment id")
	ErrPaymentNotLinked = errors.New("payment has no quote reference")
)

// ISettlementUseCase processes payment-provider webhooks. An approved
// payment whose external reference names a quote settles that quote's
// invoice, which in turn can escalate the project to the invoice-settled
// stage through the normal derivation path.

type ISettlementUseCase interface {
	ProcessPaymentEvent(ctx context.Context, paymentID string) error
}

type SettlementUseCase struct {
	gateway interfaces.IPaymentGateway
	settler interfaces.IInvoiceSettler
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(gateway interfaces.IPaymentGateway, settler interfaces.IInvoiceSettler) *SettlementUseCase {
	return &SettlementUseCase{gateway: gateway, settler: settler}
}

func (u *SettlementUseCase) ProcessPaymentEvent(ctx context.Context, paymentID string) error {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return errors.New("payment gateway not configured")
	}

	status, quoteID, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[settlement][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		return err
	}
	if status != "approved" {
		log.Printf("[settlement][usecase] ignoring payment payment_id=%s status=%s", paymentID, status)
		return nil
	}
	if strings.TrimSpace(quoteID) == "" {
		return ErrPaymentNotLinked
	}

	_, err = u.settler.SettleInvoice(ctx, quoteID, entities.ActorSystem)
	if errors.Is(err, ErrQuoteAlreadySettled) {
		// Providers redeliver webhooks; a settled invoice staying settled is
		// the expected outcome, not a failure.
		log.Printf("[settlement][usecase] already settled quote_id=%s payment_id=%s", quoteID, paymentID)
		return nil
	}
	if err != nil {
		log.Printf("[settlement][usecase] settle failed quote_id=%s payment_id=%s err=%v", quoteID, paymentID, err)
		return err
	}
	log.Printf("[settlement][usecase] invoice settled quote_id=%s payment_id=%s", quoteID, paymentID)
	return nil
}
