package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Status is the normalized outcome of a gateway callback.
type Status string

// Callback statuses.
const (
	StatusSuccess            Status = "SUCCESS"
	StatusCancelled          Status = "CANCELLED"
	StatusInvalidFingerprint Status = "INVALID_FINGERPRINT"
	StatusError              Status = "ERROR"
)

// Message types the gateway uses for a completed operation.
const (
	MessageTypePurchase = "8"
	MessageTypeRefund   = "10"
	MessageTypeService  = "P"
	MessageTypeRecharge = "M"
)

// CallbackResult is the classification of one gateway callback. It is built
// once per callback and never mutated afterwards.
type CallbackResult struct {
	Status  Status            `json:"status"`
	Message string            `json:"message"`
	Success bool              `json:"success"`
	Data    map[string]string `json:"data"`
	DCC     *DCC              `json:"dcc,omitempty"`

	// Debug is only set when the fingerprint did not match.
	Debug  *Debug `json:"debug,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// DCC holds the Dynamic Currency Conversion details of a purchase.
// Values are kept as the gateway sent them.
type DCC struct {
	Enabled  bool   `json:"enabled"`
	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
	Markup   string `json:"markup,omitempty"`
	Rate     string `json:"rate,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Debug exposes both fingerprints when verification failed.
type Debug struct {
	Received string `json:"received"`
	Computed string `json:"computed"`
}

// IsSuccess reports whether the payment or refund completed and was signed.
func (r CallbackResult) IsSuccess() bool { return r.Success }

// IsCancelled reports whether the cardholder cancelled on the gateway page.
func (r CallbackResult) IsCancelled() bool { return r.Status == StatusCancelled }

// HasInvalidFingerprint reports a success callback that failed verification.
func (r CallbackResult) HasInvalidFingerprint() bool {
	return r.Status == StatusInvalidFingerprint
}

// MessageType returns the gateway message type (8, 10, P, M or an error code).
func (r CallbackResult) MessageType() string { return r.Data["messageType"] }

// TransactionID returns merchantRespTid.
func (r CallbackResult) TransactionID() string { return r.Data["merchantRespTid"] }

// ClearingPeriod returns merchantRespCP.
func (r CallbackResult) ClearingPeriod() string { return r.Data["merchantRespCP"] }

// MerchantRef returns merchantRespMerchantRef.
func (r CallbackResult) MerchantRef() string { return r.Data["merchantRespMerchantRef"] }

// Currency returns merchantRespCurrency.
func (r CallbackResult) Currency() string { return r.Data["merchantRespCurrency"] }

// AdditionalErrorMessage returns merchantRespAdditionalErrorMessage.
func (r CallbackResult) AdditionalErrorMessage() string {
	return r.Data["merchantRespAdditionalErrorMessage"]
}

// Amount returns merchantRespPurchaseAmount; ok is false when it is absent
// or not a number.
func (r CallbackResult) Amount() (amount decimal.Decimal, ok bool) {
	raw, present := r.Data["merchantRespPurchaseAmount"]
	if !present || raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// JSON returns the indented JSON form of the result.
func (r CallbackResult) JSON() string {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
