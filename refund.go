package vinti4net

import (
	"go.uber.org/zap"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// PrepareRefund assembles, validates and signs a refund (reversal) of an
// earlier purchase identified by its transaction ID and clearing period.
//
// Refunds are CVE only and the amount must be a bare integer.
func (c *Client) PrepareRefund(p models.RefundParams) (models.PreparedRequest, error) {
	p.URLMerchantResponse = c.responseURL(p.URLMerchantResponse)

	required := []struct{ field, value string }{
		{models.FieldAmount, p.Amount},
		{models.FieldMerchantRef, p.MerchantRef},
		{models.FieldURLMerchantResponse, p.URLMerchantResponse},
		{models.FieldClearingPeriod, p.ClearingPeriod},
		{models.FieldTransactionID, p.TransactionID},
	}
	for _, r := range required {
		if r.value == "" {
			return models.PreparedRequest{}, invalidArgument(r.field, "missing required refund field: %s", r.field)
		}
	}
	if !digitsPattern.MatchString(p.Amount) {
		return models.PreparedRequest{}, invalidArgument(models.FieldAmount,
			"refund amount must be an integer, got non-integer value %q", p.Amount)
	}
	if _, err := ParseAmount(p.Amount); err != nil {
		return models.PreparedRequest{}, err
	}
	if !isAbsoluteURL(p.URLMerchantResponse) {
		return models.PreparedRequest{}, invalidArgument(models.FieldURLMerchantResponse,
			"urlMerchantResponse must be a valid absolute URL")
	}

	currency, err := CurrencyToCode(orDefault(p.Currency, "CVE"))
	if err != nil {
		return models.PreparedRequest{}, err
	}

	now := c.now()
	fields := models.NewFields(
		models.FieldPosID, c.cfg.PosID,
		models.FieldMerchantRef, p.MerchantRef,
		models.FieldMerchantSession, orDefault(p.MerchantSession, "S"+now.Format("20060102150405")),
		models.FieldAmount, p.Amount,
		models.FieldCurrency, formatCurrency(currency),
		models.FieldIs3DSec, "1",
		models.FieldTransactionCode, string(models.TransactionRefund),
		models.FieldURLMerchantResponse, p.URLMerchantResponse,
		models.FieldLanguageMessages, c.language(p.LanguageMessages),
		models.FieldTimeStamp, orDefault(p.TimeStamp, now.Format(TimeStampLayout)),
		models.FieldFingerprintVersion, FingerprintVersion,
		models.FieldReversal, reversalFlag,
		models.FieldClearingPeriod, p.ClearingPeriod,
		models.FieldTransactionID, p.TransactionID,
	)

	if err := ValidateParams(fields); err != nil {
		c.logger.Info("refund rejected", zap.Error(err))
		return models.PreparedRequest{}, err
	}
	return c.sign(fields, FamilyRefund), nil
}
