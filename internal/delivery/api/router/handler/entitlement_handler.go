package handler

import (
	"net/http"

	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/response"
	"pesantren/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EntitlementHandler serves entitlements and their QR receipts.
type EntitlementHandler struct {
	accessUC usecase.AccessUsecase
}

// NewEntitlementHandler is the constructor for EntitlementHandler
func NewEntitlementHandler(accessUC usecase.AccessUsecase) *EntitlementHandler {
	return &EntitlementHandler{accessUC: accessUC}
}

// VerifyReceiptRequest carries the scanned QR payload
type VerifyReceiptRequest struct {
	QRData string `json:"qr_data" validate:"required,max=512"`
}

// ListEntitlements returns the entitlements of the current actor
func (h *EntitlementHandler) ListEntitlements(c echo.Context) error {
	entitlements, err := h.accessUC.ListEntitlements(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return err
	}

	return response.List(c, entitlements)
}

// Receipt renders the QR receipt of one entitlement as PNG
func (h *EntitlementHandler) Receipt(c echo.Context) error {
	png, err := h.accessUC.Receipt(c.Request().Context(), middleware.GetActor(c), c.Param("reference"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyReceipt looks up the entitlement behind a scanned receipt
func (h *EntitlementHandler) VerifyReceipt(c echo.Context) error {
	var req VerifyReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ent, err := h.accessUC.VerifyReceipt(c.Request().Context(), req.QRData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ent)
}
