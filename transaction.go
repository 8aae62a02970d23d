package vinti4net

import (
	"github.com/spf13/cast"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

type txState int

const (
	txUnprepared txState = iota
	txPrepared
	txSigned
)

// billingParams are SetRequestParams keys that belong to the 3-D Secure
// billing payload rather than to the request itself.
var billingParams = map[string]bool{
	"acctID":           true,
	"acctInfo":         true,
	"addrMatch":        true,
	"billAddrCountry":  true,
	"billAddrCity":     true,
	"billAddrLine1":    true,
	"billAddrPostCode": true,
	"email":            true,
}

var requestParams = map[string]bool{
	models.FieldMerchantRef:      true,
	models.FieldMerchantSession:  true,
	models.FieldLanguageMessages: true,
	models.FieldEntityCode:       true,
	models.FieldReferenceNumber:  true,
	models.FieldTimeStamp:        true,
	models.FieldCurrency:         true,
	models.FieldClearingPeriod:   true,
	"billing":                    true,
}

// Transaction is a one-shot builder: choose exactly one operation (Purchase,
// Service, Recharge or Refund), optionally adjust parameters, then Sign once.
//
// A Transaction is not safe for concurrent use.
type Transaction struct {
	client *Client
	state  txState

	code    models.TransactionCode
	payment models.PaymentParams
	refund  models.RefundParams

	billing map[string]any
	extra   map[string]string

	prepared models.PreparedRequest
}

// NewTransaction starts an unprepared transaction bound to c.
func (c *Client) NewTransaction() *Transaction {
	return &Transaction{client: c}
}

// Purchase prepares a card purchase. billing carries the 3-D Secure data
// (see NormalizeBilling); currency defaults to CVE.
func (t *Transaction) Purchase(amount any, billing map[string]any, currency string) error {
	if err := t.begin(); err != nil {
		return err
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return err
	}
	t.code = models.TransactionPurchase
	t.payment = models.PaymentParams{
		TransactionCode: models.TransactionPurchase,
		Amount:          a.String(),
		Currency:        currency,
	}
	t.mergeBilling(billing)
	t.state = txPrepared
	return nil
}

// Service prepares a bill payment to entity with the given reference.
func (t *Transaction) Service(amount any, entity, reference string) error {
	return t.entityPayment(models.TransactionService, amount, entity, reference)
}

// Recharge prepares a prepaid top-up to entity for the given number.
func (t *Transaction) Recharge(amount any, entity, number string) error {
	return t.entityPayment(models.TransactionRecharge, amount, entity, number)
}

func (t *Transaction) entityPayment(code models.TransactionCode, amount any, entity, reference string) error {
	if err := t.begin(); err != nil {
		return err
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return err
	}
	t.code = code
	t.payment = models.PaymentParams{
		TransactionCode: code,
		Amount:          a.String(),
		EntityCode:      entity,
		ReferenceNumber: reference,
	}
	t.state = txPrepared
	return nil
}

// Refund prepares the reversal of a purchase. The amount must be a whole
// number; it is checked when the refund is signed.
func (t *Transaction) Refund(amount any, merchantRef, merchantSession, transactionID, clearingPeriod string) error {
	if err := t.begin(); err != nil {
		return err
	}
	raw, err := cast.ToStringE(amount)
	if err != nil {
		return invalidArgument(models.FieldAmount, "unsupported amount type %T", amount)
	}
	t.code = models.TransactionRefund
	t.refund = models.RefundParams{
		Amount:          raw,
		MerchantRef:     merchantRef,
		MerchantSession: merchantSession,
		TransactionID:   transactionID,
		ClearingPeriod:  clearingPeriod,
	}
	t.state = txPrepared
	return nil
}

// SetRequestParams overrides selected request parameters before signing.
// Accepted keys are merchantRef, merchantSession, languageMessages,
// entityCode, referenceNumber, timeStamp, currency, clearingPeriod, billing
// and the billing shortcuts (email, billAddr*, acctID, acctInfo, addrMatch).
// Billing keys are ignored for refunds.
func (t *Transaction) SetRequestParams(params map[string]any) error {
	if t.state == txSigned {
		return ErrAlreadyPrepared
	}
	var (
		billing map[string]any
		extra   = make(map[string]string)
	)
	for key, v := range params {
		switch {
		case !requestParams[key] && !billingParams[key]:
			return invalidArgument(key, "parameter not allowed: %s", key)
		case key == "billing":
			m, ok := toStringMap(v)
			if !ok {
				return invalidArgument(key, "billing must be a map")
			}
			billing = mergeMaps(billing, m)
		case billingParams[key]:
			billing = mergeMaps(billing, map[string]any{key: v})
		default:
			s, err := cast.ToStringE(v)
			if err != nil {
				return invalidArgument(key, "%s must be a scalar value", key)
			}
			extra[key] = s
		}
	}

	t.mergeBilling(billing)
	if len(extra) > 0 && t.extra == nil {
		t.extra = make(map[string]string, len(extra))
	}
	for key, s := range extra {
		t.extra[key] = s
	}
	return nil
}

// Sign finalizes the prepared operation. responseURL falls back to the
// client's configured response URL.
func (t *Transaction) Sign(responseURL string) (models.PreparedRequest, error) {
	switch t.state {
	case txUnprepared:
		return models.PreparedRequest{}, ErrNotPrepared
	case txSigned:
		return models.PreparedRequest{}, ErrAlreadyPrepared
	}

	var (
		prepared models.PreparedRequest
		err      error
	)
	if t.code.IsRefund() {
		p := t.refund
		p.URLMerchantResponse = responseURL
		t.applyRefundExtras(&p)
		prepared, err = t.client.PrepareRefund(p)
	} else {
		p := t.payment
		p.URLMerchantResponse = responseURL
		p.Billing = t.billing
		t.applyPaymentExtras(&p)
		prepared, err = t.client.PreparePayment(p)
	}
	if err != nil {
		return models.PreparedRequest{}, err
	}

	t.prepared = prepared
	t.state = txSigned
	return prepared, nil
}

// PaymentForm signs the transaction and renders the auto-submitting HTML
// form that sends the cardholder to the gateway.
func (t *Transaction) PaymentForm(responseURL string) (string, error) {
	prepared, err := t.Sign(responseURL)
	if err != nil {
		return "", err
	}
	return RenderForm(prepared)
}

// Request returns the signed request; ok is false before Sign succeeds.
func (t *Transaction) Request() (models.PreparedRequest, bool) {
	return t.prepared, t.state == txSigned
}

// TransactionCode returns the prepared operation, or "" if none was chosen.
func (t *Transaction) TransactionCode() models.TransactionCode {
	return t.code
}

func (t *Transaction) begin() error {
	if t.state != txUnprepared {
		return ErrAlreadyPrepared
	}
	return nil
}

func (t *Transaction) mergeBilling(m map[string]any) {
	t.billing = mergeMaps(t.billing, m)
}

// mergeMaps copies src into dst, allocating dst when needed.
func mergeMaps(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (t *Transaction) applyPaymentExtras(p *models.PaymentParams) {
	for key, v := range t.extra {
		switch key {
		case models.FieldMerchantRef:
			p.MerchantRef = v
		case models.FieldMerchantSession:
			p.MerchantSession = v
		case models.FieldLanguageMessages:
			p.LanguageMessages = v
		case models.FieldEntityCode:
			p.EntityCode = v
		case models.FieldReferenceNumber:
			p.ReferenceNumber = v
		case models.FieldTimeStamp:
			p.TimeStamp = v
		case models.FieldCurrency:
			p.Currency = v
		}
	}
}

func (t *Transaction) applyRefundExtras(p *models.RefundParams) {
	for key, v := range t.extra {
		switch key {
		case models.FieldMerchantRef:
			p.MerchantRef = v
		case models.FieldMerchantSession:
			p.MerchantSession = v
		case models.FieldLanguageMessages:
			p.LanguageMessages = v
		case models.FieldTimeStamp:
			p.TimeStamp = v
		case models.FieldCurrency:
			p.Currency = v
		case models.FieldClearingPeriod:
			p.ClearingPeriod = v
		}
	}
}
