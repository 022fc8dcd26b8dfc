package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fitbite/internal/errors"
	"fitbite/internal/service"
)

// BillingHandler handles invoice data and document issuing endpoints.
type BillingHandler struct {
	billingService service.BillingService
	orderService   service.OrderService
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(billingService service.BillingService, orderService service.OrderService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		orderService:   orderService,
	}
}

// IssueReceiptRequest asks for a consumer receipt.
type IssueReceiptRequest struct {
	OrderID uint   `json:"order_id" validate:"required"`
	RUT     string `json:"rut" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

// IssueInvoiceRequest asks for a business invoice.
type IssueInvoiceRequest struct {
	OrderID          uint   `json:"order_id" validate:"required"`
	RUT              string `json:"rut" validate:"required"`
	BusinessName     string `json:"business_name" validate:"required"`
	BusinessActivity string `json:"business_activity" validate:"required"`
}

// PaymentWebhookRequest is the payment provider's confirmation payload.
type PaymentWebhookRequest struct {
	OrderID uint `json:"order_id" validate:"required"`
}

// InvoiceData godoc
// @Summary Invoice data for one of the caller's orders
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} service.InvoiceData
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /billing/orders/{id} [get]
func (h *BillingHandler) InvoiceData(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	data, err := h.billingService.InvoiceData(c.Request().Context(), CurrentUserID(c), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, data)
}

// IssueReceipt godoc
// @Summary Issue a consumer receipt for an order
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IssueReceiptRequest true "Receipt data"
// @Success 200 {object} service.IssueResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /billing/receipts [post]
func (h *BillingHandler) IssueReceipt(c echo.Context) error {
	var req IssueReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.billingService.IssueReceipt(c.Request().Context(), CurrentUserID(c), service.ReceiptRequest{
		OrderID: req.OrderID,
		RUT:     req.RUT,
		Email:   req.Email,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// IssueInvoice godoc
// @Summary Issue a business invoice for an order
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IssueInvoiceRequest true "Invoice data"
// @Success 200 {object} service.IssueResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /billing/invoices [post]
func (h *BillingHandler) IssueInvoice(c echo.Context) error {
	var req IssueInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.billingService.IssueInvoice(c.Request().Context(), CurrentUserID(c), service.InvoiceRequest{
		OrderID:          req.OrderID,
		RUT:              req.RUT,
		BusinessName:     req.BusinessName,
		BusinessActivity: req.BusinessActivity,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// PaymentWebhook godoc
// @Summary Payment provider confirmation webhook
// @Tags billing
// @Accept json
// @Produce json
// @Param request body PaymentWebhookRequest true "Confirmation payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /billing/webhook [post]
func (h *BillingHandler) PaymentWebhook(c echo.Context) error {
	var req PaymentWebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.orderService.MarkPaid(c.Request().Context(), req.OrderID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "payment confirmed",
	})
}
