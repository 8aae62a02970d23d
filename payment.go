package vinti4net

import (
	"go.uber.org/zap"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// PreparePayment assembles, validates and signs a purchase, service or
// recharge request.
//
// For purchases with billing data the payload is normalized, its scalar
// fields are posted alongside the request and the whole payload is sent in
// purchaseRequest.
func (c *Client) PreparePayment(p models.PaymentParams) (models.PreparedRequest, error) {
	switch p.TransactionCode {
	case "":
		return models.PreparedRequest{}, invalidArgument(models.FieldTransactionCode, "transactionCode is required")
	case models.TransactionRefund:
		return models.PreparedRequest{}, invalidArgument(models.FieldTransactionCode, "refunds must be prepared with PrepareRefund")
	}

	currency, err := CurrencyToCode(orDefault(p.Currency, "CVE"))
	if err != nil {
		return models.PreparedRequest{}, err
	}

	amount, err := ParseAmount(p.Amount)
	if err != nil {
		return models.PreparedRequest{}, err
	}

	now := c.now()
	stamp := now.Format("20060102150405")

	fields := models.NewFields(
		models.FieldPosID, c.cfg.PosID,
		models.FieldMerchantRef, orDefault(p.MerchantRef, "R"+stamp),
		models.FieldMerchantSession, orDefault(p.MerchantSession, "S"+stamp),
		// The posted amount is the integer part; the gateway has no minor
		// unit for escudos.
		models.FieldAmount, amount.Truncate(0).String(),
		models.FieldCurrency, formatCurrency(currency),
		models.FieldTransactionCode, string(p.TransactionCode),
		models.FieldLanguageMessages, c.language(p.LanguageMessages),
		models.FieldEntityCode, p.EntityCode,
		models.FieldReferenceNumber, p.ReferenceNumber,
		models.FieldTimeStamp, orDefault(p.TimeStamp, now.Format(TimeStampLayout)),
		models.FieldFingerprintVersion, FingerprintVersion,
		models.FieldIs3DSec, "1",
		models.FieldURLMerchantResponse, c.responseURL(p.URLMerchantResponse),
	)

	var billing *models.Billing
	if p.TransactionCode == models.TransactionPurchase && len(p.Billing) > 0 {
		b, err := NormalizeBilling(p.Billing)
		if err != nil {
			return models.PreparedRequest{}, err
		}
		b.Flat().Each(fields.Set)

		pr, err := PurchaseRequest(b)
		if err != nil {
			return models.PreparedRequest{}, err
		}
		fields.Set(models.FieldPurchaseRequest, pr)
		billing = &b
	}

	if err := ValidateParams(fields); err != nil {
		c.logger.Info("payment rejected", zap.Error(err))
		return models.PreparedRequest{}, err
	}

	prepared := c.sign(fields, FamilyPayment)
	prepared.Billing = billing
	return prepared, nil
}
