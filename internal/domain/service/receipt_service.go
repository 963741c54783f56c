package service

import "pesantren/internal/domain/entity"

// ReceiptService encodes and decodes infaq receipt QR codes.
type ReceiptService interface {
	// GenerateReceiptQR renders a PNG QR code identifying the entitlement.
	GenerateReceiptQR(entitlement *entity.Entitlement) ([]byte, error)

	// ParseReceiptQR decodes scanned QR data and returns the entitlement reference.
	ParseReceiptQR(qrData string) (string, error)
}
