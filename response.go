package vinti4net

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

const (
	msgCancelled          = "The user cancelled the payment"
	msgPaymentSuccess     = "Transaction successful"
	msgRefundSuccess      = "Refund processed successfully"
	msgInvalidFingerprint = "Invalid fingerprint: the response could not be authenticated"
	msgTransactionFailed  = "Transaction failed"
	dccMalformed          = "malformed"
)

// ProcessResponse classifies the fields the gateway posted to the merchant
// response URL.
//
// Callbacks are untrusted input. Any content yields a result; a SUCCESS
// status is only returned for a completed message type whose fingerprint
// verifies against this client's auth code.
func (c *Client) ProcessResponse(postData map[string]string) (result models.CallbackResult) {
	data := make(map[string]string, len(postData))
	for k, v := range postData {
		data[k] = v
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("callback classification failed", zap.Any("panic", r))
			result = models.CallbackResult{
				Status:  models.StatusError,
				Message: msgTransactionFailed,
				Data:    data,
				Detail:  fmt.Sprint(r),
			}
		}
	}()

	if data["UserCancelled"] == "true" {
		c.logger.Info("callback cancelled by user",
			zap.String("merchantRef", data["merchantRespMerchantRef"]))
		return models.CallbackResult{
			Status:  models.StatusCancelled,
			Message: msgCancelled,
			Data:    data,
		}
	}

	received := data["resultFingerPrint"]
	valid, computed := c.fingerprinter.Verify(models.FieldsFromMap(data), received)
	messageType := data["messageType"]

	result = models.CallbackResult{Data: data}
	switch {
	case isCompletedMessageType(messageType) && valid:
		result.Status = models.StatusSuccess
		result.Success = true
		result.Message = msgPaymentSuccess
		if isRefundCallback(data) {
			result.Message = msgRefundSuccess
		}
	case isCompletedMessageType(messageType):
		result.Status = models.StatusInvalidFingerprint
		result.Message = msgInvalidFingerprint
	default:
		result.Status = models.StatusError
		result.Message = orDefault(data["merchantRespErrorDescription"], msgTransactionFailed)
		result.Detail = data["merchantRespErrorDetail"]
	}

	if !valid {
		result.Debug = &models.Debug{Received: received, Computed: computed}
	}
	if isPurchaseCallback(data) {
		result.DCC = extractDCC(data["merchantRespDCCData"])
	}

	fields := []zap.Field{
		zap.String("status", string(result.Status)),
		zap.String("messageType", messageType),
		zap.String("merchantRef", data["merchantRespMerchantRef"]),
	}
	if result.Status == models.StatusInvalidFingerprint {
		c.logger.Warn("callback fingerprint mismatch", fields...)
	} else {
		c.logger.Info("callback classified", fields...)
	}
	return result
}

func isCompletedMessageType(mt string) bool {
	switch mt {
	case models.MessageTypePurchase, models.MessageTypeRefund,
		models.MessageTypeService, models.MessageTypeRecharge:
		return true
	}
	return false
}

func isPurchaseCallback(data map[string]string) bool {
	return data["messageType"] == models.MessageTypePurchase ||
		data["transactionCode"] == string(models.TransactionPurchase)
}

func isRefundCallback(data map[string]string) bool {
	return data["messageType"] == models.MessageTypeRefund ||
		data["transactionCode"] == string(models.TransactionRefund)
}

// extractDCC parses merchantRespDCCData. Numbers are kept in their textual
// form so no precision is lost.
func extractDCC(raw string) *models.DCC {
	if strings.TrimSpace(raw) == "" {
		return &models.DCC{}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil || payload == nil {
		return &models.DCC{Error: dccMalformed}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &models.DCC{Error: dccMalformed}
	}

	text := func(key string) string {
		switch v := payload[key].(type) {
		case nil, map[string]any, []any:
			return ""
		default:
			return cast.ToString(v)
		}
	}
	return &models.DCC{
		Enabled:  text("dcc") == "Y",
		Amount:   text("dccAmount"),
		Currency: text("dccCurrency"),
		Markup:   text("dccMarkup"),
		Rate:     text("dccRate"),
	}
}
