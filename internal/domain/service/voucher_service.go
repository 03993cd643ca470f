package service

// VoucherData is the payload encoded into a redemption voucher QR code.
type VoucherData struct {
	EntryID     string `json:"entry_id"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// VoucherService defines the interface for voucher QR code generation and parsing
type VoucherService interface {
	// GenerateVoucherQR renders the voucher as a PNG QR code
	GenerateVoucherQR(voucher *VoucherData) ([]byte, error)

	// ParseVoucherQR parses QR code data back into a voucher
	ParseVoucherQR(qrData string) (*VoucherData, error)
}
