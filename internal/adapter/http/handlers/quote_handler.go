package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "atelier_crm/internal/adapter/http/dto/request"
	response "atelier_crm/internal/adapter/http/dto/response"
	"atelier_crm/internal/domain/entities"
	"atelier_crm/internal/usecase"
	"atelier_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes (devis). The accept, refuse
// and settle actions are the pipeline triggers.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// actorFrom identifies who performed the action for the audit timeline.
// Authentication lives in front of this service; the gateway forwards the
// caller identity in X-Actor.
func actorFrom(c *gin.Context) string {
	if actor := strings.TrimSpace(c.GetHeader("X-Actor")); actor != "" {
		return actor
	}
	return entities.ActorSystem
}

// CreateQuote registers a new pending quote on a project.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	projectID := payload.ResolveProjectID()
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), projectID, payload.Amount)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteByID(c, h.usecase.AcceptQuote)
}

func (h *QuoteHandler) RefuseQuote(c *gin.Context) {
	h.patchQuoteByID(c, h.usecase.RefuseQuote)
}

func (h *QuoteHandler) SettleInvoice(c *gin.Context) {
	h.patchQuoteByID(c, h.usecase.SettleInvoice)
}

func (h *QuoteHandler) patchQuoteByID(
	c *gin.Context,
	updater func(ctx context.Context, id, actor string) (entities.Quote, error),
) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := updater(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuote returns one quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListProjectQuotes returns every quote attached to a project.
func (h *QuoteHandler) ListProjectQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidQuoteAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyDecided):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_DECIDED", "Quote already accepted or refused", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote must be accepted before settling its invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadySettled):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SETTLED", "Quote invoice already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteWriteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
