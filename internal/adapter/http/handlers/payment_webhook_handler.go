package handlers

import (
	"errors"
	"log"
	"net/http"

	request "atelier_crm/internal/adapter/http/dto/request"
	"atelier_crm/internal/usecase"
	"atelier_crm/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives Mercado Pago event notifications. Approved
// payments settle the referenced quote's invoice; everything else is
// acknowledged and ignored so the provider stops retrying.

type PaymentWebhookHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewPaymentWebhookHandler(uc usecase.ISettlementUseCase) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{usecase: uc}
}

func (h *PaymentWebhookHandler) HandleWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !payload.IsPaymentEvent() {
		log.Printf("[payment][webhook] ignoring event type=%q", payload.Type)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	paymentID := payload.ResolvePaymentID()
	if paymentID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Missing payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ProcessPaymentEvent(c.Request.Context(), paymentID); err != nil {
		// A 5xx makes the provider retry later, which is what we want for
		// transient failures; unlinked payments are not retryable.
		if errors.Is(err, usecase.ErrPaymentNotLinked) || errors.Is(err, usecase.ErrQuoteNotFound) {
			log.Printf("[payment][webhook] unlinked payment payment_id=%s err=%v", paymentID, err)
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}
		appErr := pkg.NewDomainError("WEBHOOK_PROCESSING_FAILED", "Failed to process payment event", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
