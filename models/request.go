package models

// TransactionCode identifies the kind of operation sent to the gateway.
type TransactionCode string

// Transaction codes accepted by the gateway.
const (
	TransactionPurchase TransactionCode = "1"
	TransactionService  TransactionCode = "2"
	TransactionRecharge TransactionCode = "3"
	TransactionRefund   TransactionCode = "4"
)

// IsRefund reports whether the code selects the refund fingerprint family.
func (c TransactionCode) IsRefund() bool {
	return c == TransactionRefund
}

// Gateway form field names.
const (
	FieldPosID               = "posID"
	FieldMerchantRef         = "merchantRef"
	FieldMerchantSession     = "merchantSession"
	FieldAmount              = "amount"
	FieldCurrency            = "currency"
	FieldTransactionCode     = "transactionCode"
	FieldLanguageMessages    = "languageMessages"
	FieldEntityCode          = "entityCode"
	FieldReferenceNumber     = "referenceNumber"
	FieldTimeStamp           = "timeStamp"
	FieldFingerprintVersion  = "fingerprintversion"
	FieldIs3DSec             = "is3DSec"
	FieldURLMerchantResponse = "urlMerchantResponse"
	FieldPurchaseRequest     = "purchaseRequest"
	FieldReversal            = "reversal"
	FieldClearingPeriod      = "clearingPeriod"
	FieldTransactionID       = "transactionID"
	FieldFingerprint         = "fingerprint"
)

// PaymentParams is the input for a purchase, service or recharge payment.
type PaymentParams struct {
	// TransactionCode must be 1 (purchase), 2 (service) or 3 (recharge).
	TransactionCode TransactionCode

	// Amount in the currency's major unit, e.g. "2500" or "2500.00".
	// Fractional digits are truncated before posting.
	Amount string

	// Currency is an ISO 4217 alpha-3 symbol or numeric code. Defaults to CVE.
	Currency string

	// URLMerchantResponse is where the gateway posts the callback.
	URLMerchantResponse string

	// Optional; generated from the clock when empty.
	MerchantRef     string
	MerchantSession string
	TimeStamp       string

	// LanguageMessages is pt, en or fr. Defaults to pt.
	LanguageMessages string

	// EntityCode and ReferenceNumber are required for service and recharge.
	EntityCode      string
	ReferenceNumber string

	// Billing is the raw 3-D Secure billing payload for purchases. It may
	// embed a "user" sub-map using application field names.
	Billing map[string]any
}

// RefundParams is the input for a refund of an earlier purchase.
type RefundParams struct {
	// Amount is a non-negative integer string; decimals are rejected.
	Amount string

	// MerchantRef of the refund request, required.
	MerchantRef string

	MerchantSession string

	// TransactionID and ClearingPeriod identify the original transaction,
	// as returned in merchantRespTid and merchantRespCP.
	TransactionID  string
	ClearingPeriod string

	URLMerchantResponse string
	LanguageMessages    string
	TimeStamp           string

	// Currency defaults to CVE, the only currency accepted for refunds.
	Currency string
}

// PreparedRequest is a signed request ready to be posted by the browser.
type PreparedRequest struct {
	// PostURL carries FingerPrint, TimeStamp and FingerPrintVersion in its
	// query string.
	PostURL string

	// Fields are posted as hidden form inputs, in order.
	Fields *Fields

	// Billing is the normalized billing payload of a purchase, if any.
	Billing *Billing
}

// Fingerprint returns the signed fingerprint.
func (p PreparedRequest) Fingerprint() string {
	return p.Fields.Get(FieldFingerprint)
}
