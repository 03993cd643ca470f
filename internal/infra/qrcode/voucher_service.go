// Package qrcode renders redemption vouchers as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"loyalty/config"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type voucherService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewVoucherService creates a voucher QR service from config
func NewVoucherService(cfg *config.Config) service.VoucherService {
	size, level := defaultSize, ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newVoucherService(size, level)
}

func newVoucherService(size int, errorCorrectionLevel string) *voucherService {
	if size <= 0 {
		size = defaultSize
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &voucherService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVoucherQR encodes the voucher as JSON and renders it as a PNG
func (s *voucherService) GenerateVoucherQR(voucher *service.VoucherData) ([]byte, error) {
	if voucher == nil || voucher.EntryID == "" {
		return nil, fmt.Errorf("voucher entry id is required")
	}

	jsonData, err := json.Marshal(voucher)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal voucher data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVoucherQR decodes scanned QR text back into a voucher
func (s *voucherService) ParseVoucherQR(qrData string) (*service.VoucherData, error) {
	var data service.VoucherData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal voucher data: %w", err)
	}

	if data.Type != constants.VoucherTypeRedemption {
		return nil, fmt.Errorf("invalid voucher type: %s", data.Type)
	}
	if data.EntryID == "" {
		return nil, fmt.Errorf("voucher is missing its entry id")
	}
	if data.Points <= 0 {
		return nil, fmt.Errorf("invalid voucher points: %d", data.Points)
	}

	return &data, nil
}
