package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fleet_bill_verifier/internal/adapter/http/dto/request"
	response "fleet_bill_verifier/internal/adapter/http/dto/response"
	"fleet_bill_verifier/internal/adapter/http/middleware"
	"fleet_bill_verifier/internal/usecase"
	"fleet_bill_verifier/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoice verification.
type InvoiceHandler struct {
	usecase          usecase.IInvoiceEvaluationUseCase
	defaultMarginPct float64
}

func NewInvoiceHandler(uc usecase.IInvoiceEvaluationUseCase, defaultMarginPct float64) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, defaultMarginPct: defaultMarginPct}
}

// EvaluateInvoice godoc
// @Summary      Evaluate invoice line items
// @Description  Judges every line against market prices and summarizes the invoice total.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EvaluateInvoiceRequest  true  "Invoice line items"
// @Success      200      {object}  response.InvoiceEvaluationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /invoices/evaluate [post]
func (h *InvoiceHandler) EvaluateInvoice(c *gin.Context) {
	var payload request.EvaluateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoice][handler] invalid payload request_id=%s err=%v", middleware.RequestIDFrom(c), err)
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	evaluation, err := h.usecase.Evaluate(c.Request.Context(), payload.ToLineItems(), payload.ResolveMarginPct(h.defaultMarginPct))
	if err != nil {
		log.Printf("[invoice][handler] evaluate failed request_id=%s err=%v", middleware.RequestIDFrom(c), err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceEvaluation(evaluation))
}

// GetDemoInvoice godoc
// @Summary      Sample invoice
// @Description  Returns a sample set of line items that can be posted to /invoices/evaluate.
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.DemoInvoiceResponse
// @Router       /invoices/demo [get]
func (h *InvoiceHandler) GetDemoInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDemoLineItems(h.usecase.DemoLineItems()))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainError("NO_LINE_ITEMS", "Invoice has no line items", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMarginPct):
		return pkg.NewDomainError("INVALID_MARGIN_PCT", "Margin pct is out of range", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMarketProviderNotConfigured):
		return pkg.NewDomainError("MARKET_PROVIDER_UNAVAILABLE", "Market price provider is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
