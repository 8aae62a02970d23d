package vinti4net

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// Family selects the request field ordering used for signing.
type Family int

const (
	// FamilyPayment covers purchase, service and recharge requests.
	FamilyPayment Family = iota
	// FamilyRefund covers refund requests.
	FamilyRefund
)

func (f Family) String() string {
	if f == FamilyRefund {
		return "refund"
	}
	return "payment"
}

// FamilyOf returns the fingerprint family for a transaction code.
func FamilyOf(code models.TransactionCode) Family {
	if code.IsRefund() {
		return FamilyRefund
	}
	return FamilyPayment
}

// reversalFlag marks a refund request.
const reversalFlag = "R"

// Fingerprinter computes and checks gateway fingerprints:
//
//	Base64(SHA-512(Base64(SHA-512(posAuthCode)) || field1 || field2 ...))
//
// Field order is fixed per family; absent fields contribute "".
// A Fingerprinter is immutable and safe for concurrent use.
type Fingerprinter struct {
	encodedAuthCode string
}

// NewFingerprinter hashes the auth code once; the raw secret is not kept.
func NewFingerprinter(posAuthCode string) *Fingerprinter {
	return &Fingerprinter{encodedAuthCode: sha512Base64(posAuthCode)}
}

// Request signs an outbound request.
func (f *Fingerprinter) Request(fields *models.Fields, family Family) string {
	var parts []string
	if family == FamilyRefund {
		parts = []string{
			fields.Get(models.FieldTransactionCode),
			fields.Get(models.FieldPosID),
			fields.Get(models.FieldMerchantRef),
			fields.Get(models.FieldMerchantSession),
			scaledAmountText(fields.Get(models.FieldAmount)),
			fields.Get(models.FieldCurrency),
			fields.Get(models.FieldClearingPeriod),
			fields.Get(models.FieldTransactionID),
			reversalFlag,
			fields.Get(models.FieldURLMerchantResponse),
			fields.Get(models.FieldLanguageMessages),
			fields.Get(models.FieldFingerprintVersion),
			fields.Get(models.FieldTimeStamp),
		}
	} else {
		parts = []string{
			fields.Get(models.FieldTimeStamp),
			scaledAmountText(fields.Get(models.FieldAmount)),
			fields.Get(models.FieldMerchantRef),
			fields.Get(models.FieldMerchantSession),
			fields.Get(models.FieldPosID),
			fields.Get(models.FieldCurrency),
			fields.Get(models.FieldTransactionCode),
			integerOrEmpty(fields.Get(models.FieldEntityCode)),
			integerOrEmpty(fields.Get(models.FieldReferenceNumber)),
		}
	}
	return f.sign(parts)
}

// Response computes the fingerprint the gateway should have sent with a
// callback. The ordering is shared by every transaction family.
func (f *Fingerprinter) Response(fields *models.Fields) string {
	return f.sign([]string{
		fields.Get("messageType"),
		fields.Get("merchantRespCP"),
		fields.Get("merchantRespTid"),
		fields.Get("merchantRespMerchantRef"),
		fields.Get("merchantRespMerchantSession"),
		scaledAmountText(fields.Get("merchantRespPurchaseAmount")),
		fields.Get("merchantRespMessageID"),
		fields.Get("merchantRespPan"),
		fields.Get("merchantResp"),
		fields.Get("merchantRespTimeStamp"),
		integerOrEmpty(fields.Get("merchantRespReferenceNumber")),
		integerOrEmpty(fields.Get("merchantRespEntityCode")),
		fields.Get("merchantRespClientReceipt"),
		strings.TrimSpace(fields.Get("merchantRespAdditionalErrorMessage")),
		fields.Get("merchantRespReloadCode"),
	})
}

// Verify recomputes the callback fingerprint and compares it with received
// in constant time. It also returns the computed value for diagnostics.
func (f *Fingerprinter) Verify(fields *models.Fields, received string) (bool, string) {
	computed := f.Response(fields)
	return constantTimeEqual(computed, received), computed
}

func (f *Fingerprinter) sign(parts []string) string {
	var b strings.Builder
	b.WriteString(f.encodedAuthCode)
	for _, p := range parts {
		b.WriteString(p)
	}
	return sha512Base64(b.String())
}

func sha512Base64(s string) string {
	sum := sha512.Sum512([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// integerOrEmpty renders entity codes and reference numbers as plain
// integers (leading zeros dropped); zero, absent or non-numeric values
// contribute nothing.
func integerOrEmpty(raw string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}
