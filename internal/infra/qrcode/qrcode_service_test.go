package qrcode

import (
	"encoding/json"
	"testing"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		wantSize             int
	}{
		{"Low error correction", 256, "L", 256},
		{"Medium error correction", 256, "m", 256},
		{"High error correction", 128, "Q", 128},
		{"Highest error correction", 512, "H", 512},
		{"Default size", 0, "invalid", defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, svc)
			assert.Equal(t, tt.wantSize, svc.(*qrcodeService).size)
		})
	}
}

func TestQRCodeService_GenerateReceiptQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateReceiptQR(&entity.Entitlement{Reference: "INFAQ-ABC", CourseKey: "bahasa-arab"})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	_, err = svc.GenerateReceiptQR(&entity.Entitlement{})
	assert.Error(t, err)
}

func TestQRCodeService_ParseReceiptQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	valid, err := json.Marshal(ReceiptData{Reference: "INFAQ-ABC", Type: ReceiptType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid receipt", string(valid), "INFAQ-ABC", false},
		{"not json", "INFAQ-ABC", "", true},
		{"wrong type", `{"reference":"INFAQ-ABC","type":"subscription"}`, "", true},
		{"missing reference", `{"type":"infaq_receipt"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseReceiptQR(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidReceipt)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
