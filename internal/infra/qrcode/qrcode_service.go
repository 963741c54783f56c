package qrcode

import (
	"encoding/json"
	"strings"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/service"
	"pesantren/internal/errors"

	"github.com/skip2/go-qrcode"
)

// ReceiptType tags QR payloads issued for infaq receipts.
const ReceiptType = "infaq_receipt"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the QR code payload of an infaq receipt.
type ReceiptData struct {
	Reference string `json:"reference"`
	CourseKey string `json:"course_key,omitempty"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a receipt QR code service.
func NewQRCodeService(size int, errorCorrectionLevel string) service.ReceiptService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR renders the entitlement reference as a PNG QR code.
func (s *qrcodeService) GenerateReceiptQR(entitlement *entity.Entitlement) ([]byte, error) {
	if entitlement == nil || entitlement.Reference == "" {
		return nil, errors.New("entitlement reference is required")
	}

	jsonData, err := json.Marshal(ReceiptData{
		Reference: entitlement.Reference,
		CourseKey: entitlement.CourseKey,
		Type:      ReceiptType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseReceiptQR decodes scanned receipt data and returns the reference.
func (s *qrcodeService) ParseReceiptQR(qrData string) (string, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", domainerrors.ErrInvalidReceipt.WrapMessage("malformed receipt payload")
	}

	if data.Type != ReceiptType {
		return "", domainerrors.ErrInvalidReceipt.WrapMessage("unexpected receipt type " + data.Type)
	}
	if data.Reference == "" {
		return "", domainerrors.ErrInvalidReceipt.WrapMessage("receipt has no reference")
	}

	return data.Reference, nil
}
