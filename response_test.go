package vinti4net

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// signedCallback returns callback data carrying a valid resultFingerPrint.
func signedCallback(t *testing.T, c *Client, data map[string]string) map[string]string {
	t.Helper()
	data["resultFingerPrint"] = c.Fingerprinter().Response(models.FieldsFromMap(data))
	return data
}

func purchaseCallback() map[string]string {
	return map[string]string{
		"messageType":                 "8",
		"merchantRespCP":              "1234",
		"merchantRespTid":             "TX12345",
		"merchantRespMerchantRef":     "R20240115103000",
		"merchantRespMerchantSession": "S20240115103000",
		"merchantRespPurchaseAmount":  "2500.00",
		"merchantRespMessageID":       "000123",
		"merchantRespPan":             "424242******4242",
		"merchantResp":                "C",
		"merchantRespTimeStamp":       "2024-01-15 10:31:02",
		"merchantRespCurrency":        "132",
	}
}

func TestProcessResponse_Cancelled(t *testing.T) {
	c := newTestClient(t)

	got := c.ProcessResponse(map[string]string{"UserCancelled": "true"})
	assert.Equal(t, models.StatusCancelled, got.Status)
	assert.True(t, got.IsCancelled())
	assert.False(t, got.Success)
	assert.Nil(t, got.Debug)
	assert.Nil(t, got.DCC)
}

func TestProcessResponse_Success(t *testing.T) {
	c := newTestClient(t)

	got := c.ProcessResponse(signedCallback(t, c, purchaseCallback()))
	assert.Equal(t, models.StatusSuccess, got.Status)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, msgPaymentSuccess, got.Message)
	assert.Nil(t, got.Debug)
	assert.Equal(t, "TX12345", got.TransactionID())
	assert.Equal(t, "1234", got.ClearingPeriod())

	amount, ok := got.Amount()
	require.True(t, ok)
	assert.Equal(t, "2500", amount.String())

	require.NotNil(t, got.DCC)
	assert.False(t, got.DCC.Enabled)
}

func TestProcessResponse_SuccessForEveryCompletedType(t *testing.T) {
	c := newTestClient(t)

	for _, mt := range []string{"8", "10", "P", "M"} {
		data := purchaseCallback()
		data["messageType"] = mt

		got := c.ProcessResponse(signedCallback(t, c, data))
		assert.Equal(t, models.StatusSuccess, got.Status, mt)
	}
}

func TestProcessResponse_RefundMessage(t *testing.T) {
	c := newTestClient(t)

	data := purchaseCallback()
	data["messageType"] = "10"
	got := c.ProcessResponse(signedCallback(t, c, data))

	assert.Equal(t, models.StatusSuccess, got.Status)
	assert.Equal(t, msgRefundSuccess, got.Message)
	assert.NotEqual(t, msgPaymentSuccess, got.Message)
	assert.Nil(t, got.DCC, "DCC only applies to purchases")
}

func TestProcessResponse_InvalidFingerprint(t *testing.T) {
	c := newTestClient(t)

	data := signedCallback(t, c, purchaseCallback())
	data["merchantRespPurchaseAmount"] = "1.00"

	got := c.ProcessResponse(data)
	assert.Equal(t, models.StatusInvalidFingerprint, got.Status)
	assert.True(t, got.HasInvalidFingerprint())
	assert.False(t, got.Success)
	require.NotNil(t, got.Debug)
	assert.Equal(t, data["resultFingerPrint"], got.Debug.Received)
	assert.NotEqual(t, got.Debug.Received, got.Debug.Computed)
	assert.NotContains(t, got.JSON(), testAuthCode)
}

func TestProcessResponse_AnyAlteredFingerprintByteIsRejected(t *testing.T) {
	c := newTestClient(t)
	data := signedCallback(t, c, purchaseCallback())
	valid := data["resultFingerPrint"]
	require.Equal(t, models.StatusSuccess, c.ProcessResponse(data).Status)

	for i := 0; i < len(valid); i++ {
		b := []byte(valid)
		b[i] ^= 0x01
		data["resultFingerPrint"] = string(b)

		got := c.ProcessResponse(data)
		assert.Equal(t, models.StatusInvalidFingerprint, got.Status, "byte %d", i)
	}

	data["resultFingerPrint"] = valid[:len(valid)-1]
	assert.Equal(t, models.StatusInvalidFingerprint, c.ProcessResponse(data).Status)
}

func TestProcessResponse_SignedByAnotherMerchant(t *testing.T) {
	c := newTestClient(t)
	other, err := NewClient(Config{PosID: testPosID, PosAuthCode: "someone else"})
	require.NoError(t, err)

	got := c.ProcessResponse(signedCallback(t, other, purchaseCallback()))
	assert.Equal(t, models.StatusInvalidFingerprint, got.Status)
}

func TestProcessResponse_Error(t *testing.T) {
	c := newTestClient(t)

	got := c.ProcessResponse(map[string]string{
		"messageType":                  "6",
		"merchantRespErrorDescription": "Cartão recusado",
		"merchantRespErrorDetail":      "Saldo insuficiente",
		"resultFingerPrint":            "bogus",
	})
	assert.Equal(t, models.StatusError, got.Status)
	assert.False(t, got.Success)
	assert.Equal(t, "Cartão recusado", got.Message)
	assert.Equal(t, "Saldo insuficiente", got.Detail)
	require.NotNil(t, got.Debug)
	assert.Equal(t, "bogus", got.Debug.Received)
}

func TestProcessResponse_ErrorFallbackMessage(t *testing.T) {
	c := newTestClient(t)

	got := c.ProcessResponse(map[string]string{})
	assert.Equal(t, models.StatusError, got.Status)
	assert.Equal(t, msgTransactionFailed, got.Message)
	assert.NotNil(t, got.Data)
}

func TestProcessResponse_NilInput(t *testing.T) {
	c := newTestClient(t)

	assert.NotPanics(t, func() {
		got := c.ProcessResponse(nil)
		assert.Equal(t, models.StatusError, got.Status)
	})
}

func TestProcessResponse_DoesNotAliasInput(t *testing.T) {
	c := newTestClient(t)

	data := signedCallback(t, c, purchaseCallback())
	got := c.ProcessResponse(data)
	data["merchantRespTid"] = "changed"
	assert.Equal(t, "TX12345", got.TransactionID())
}

func TestProcessResponse_DCC(t *testing.T) {
	c := newTestClient(t)

	data := purchaseCallback()
	data["merchantRespDCCData"] = `{"dcc":"Y","dccAmount":22.68,"dccCurrency":"EUR","dccMarkup":"3.5","dccRate":0.00907}`
	got := c.ProcessResponse(signedCallback(t, c, data))

	require.Equal(t, models.StatusSuccess, got.Status)
	require.NotNil(t, got.DCC)
	assert.Equal(t, models.DCC{
		Enabled:  true,
		Amount:   "22.68",
		Currency: "EUR",
		Markup:   "3.5",
		Rate:     "0.00907",
	}, *got.DCC)
}

func TestProcessResponse_DCCDisabled(t *testing.T) {
	c := newTestClient(t)

	data := purchaseCallback()
	data["merchantRespDCCData"] = `{"dcc":"N"}`
	got := c.ProcessResponse(signedCallback(t, c, data))

	require.NotNil(t, got.DCC)
	assert.False(t, got.DCC.Enabled)
	assert.Empty(t, got.DCC.Error)
}

func TestProcessResponse_MalformedDCC(t *testing.T) {
	c := newTestClient(t)

	for _, raw := range []string{
		"{not json",
		`"Y"`,
		"[]",
		`{"dcc":"Y","dccAmount":1}garbage`,
		`{"dcc":"Y"}{"dcc":"Y"}`,
	} {
		data := purchaseCallback()
		data["merchantRespDCCData"] = raw
		got := c.ProcessResponse(signedCallback(t, c, data))

		assert.Equal(t, models.StatusSuccess, got.Status, raw)
		require.NotNil(t, got.DCC, raw)
		assert.False(t, got.DCC.Enabled, raw)
		assert.Equal(t, "malformed", got.DCC.Error, raw)
	}
}

func TestCallbackResult_JSON(t *testing.T) {
	c := newTestClient(t)

	got := c.ProcessResponse(map[string]string{"UserCancelled": "true"})
	assert.Contains(t, got.JSON(), `"status": "CANCELLED"`)
}

func TestExtractDCC_TrailingWhitespace(t *testing.T) {
	got := extractDCC("{\"dcc\":\"Y\",\"dccAmount\":1} \n")
	assert.Empty(t, got.Error)
	assert.True(t, got.Enabled)
	assert.Equal(t, "1", got.Amount)
}
