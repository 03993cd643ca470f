package qrcode

import (
	"encoding/json"
	"testing"

	"loyalty/config"
	"loyalty/internal/domain/service"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVoucher() *service.VoucherData {
	return &service.VoucherData{
		EntryID:     "01929a4e-7c4b-7e1a-9a51-1f3b0b7c8d21",
		Type:        "redemption",
		Points:      250,
		Description: "Redeemed: Medium Coffee",
	}
}

func TestNewVoucherService_RecoveryLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newVoucherService(256, tt.level)
			assert.Equal(t, tt.expected, svc.errorCorrectionLevel)
		})
	}
}

func TestNewVoucherService_FromConfig(t *testing.T) {
	svc := NewVoucherService(&config.Config{})
	assert.NotNil(t, svc)

	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 0, ErrorCorrectionLevel: "H"}}
	impl, ok := NewVoucherService(cfg).(*voucherService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, impl.size)
	assert.Equal(t, qrcode.Highest, impl.errorCorrectionLevel)
}

func TestVoucherService_GenerateVoucherQR(t *testing.T) {
	svc := newVoucherService(256, "M")

	qrBytes, err := svc.GenerateVoucherQR(sampleVoucher())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestVoucherService_GenerateVoucherQR_MissingEntry(t *testing.T) {
	svc := newVoucherService(256, "M")

	_, err := svc.GenerateVoucherQR(&service.VoucherData{Type: "redemption", Points: 10})
	assert.Error(t, err)

	_, err = svc.GenerateVoucherQR(nil)
	assert.Error(t, err)
}

func TestVoucherService_ParseVoucherQR(t *testing.T) {
	svc := newVoucherService(256, "M")
	jsonData, err := json.Marshal(sampleVoucher())
	require.NoError(t, err)

	parsed, err := svc.ParseVoucherQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, sampleVoucher(), parsed)
}

func TestVoucherService_ParseVoucherQR_Invalid(t *testing.T) {
	svc := newVoucherService(256, "M")

	tests := []struct {
		name    string
		payload string
		errMsg  string
	}{
		{"not json", "invalid json", "failed to unmarshal voucher data"},
		{"wrong type", `{"entry_id":"x","type":"subscription","points":5}`, "invalid voucher type"},
		{"missing entry", `{"type":"redemption","points":5}`, "missing its entry id"},
		{"non-positive points", `{"entry_id":"x","type":"redemption","points":0}`, "invalid voucher points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseVoucherQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
