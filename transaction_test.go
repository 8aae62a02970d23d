package vinti4net

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

func TestTransaction_PurchaseLifecycle(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()

	_, ok := tx.Request()
	assert.False(t, ok)

	require.NoError(t, tx.Purchase(2500, testBilling(), "CVE"))
	assert.Equal(t, models.TransactionPurchase, tx.TransactionCode())

	got, err := tx.Sign(testReturn)
	require.NoError(t, err)
	assert.Equal(t,
		"I4U4tJmWQ9b7cPrGyHpP4kkX7gS6K2LYr6V/3RZOfWORbaGuKrvoWypSQyWs/gMTGagm1IjfFvFBTvma8XtPHw==",
		got.Fingerprint())

	stored, ok := tx.Request()
	assert.True(t, ok)
	assert.Equal(t, got.PostURL, stored.PostURL)
}

func TestTransaction_StateErrors(t *testing.T) {
	c := newTestClient(t)

	tx := c.NewTransaction()
	_, err := tx.Sign(testReturn)
	assert.True(t, errors.Is(err, ErrNotPrepared))

	require.NoError(t, tx.Service(1000, "10001", "1234567"))
	assert.True(t, errors.Is(tx.Purchase(10, nil, ""), ErrAlreadyPrepared))
	assert.True(t, errors.Is(tx.Recharge(10, "10021", "9912345"), ErrAlreadyPrepared))
	assert.True(t, errors.Is(tx.Refund(10, "R", "S", "TX1", "1"), ErrAlreadyPrepared))

	_, err = tx.Sign(testReturn)
	require.NoError(t, err)

	_, err = tx.Sign(testReturn)
	assert.True(t, errors.Is(err, ErrAlreadyPrepared))
	assert.True(t, errors.Is(tx.SetRequestParams(map[string]any{"merchantRef": "X"}), ErrAlreadyPrepared))
}

func TestTransaction_FailedSignCanBeRetried(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()

	require.NoError(t, tx.Purchase("10", nil, ""))
	_, err := tx.Sign("")
	require.Error(t, err, "no response URL configured")

	_, err = tx.Sign(testReturn)
	assert.NoError(t, err)
}

func TestTransaction_SetRequestParams(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()

	require.NoError(t, tx.Purchase("2500", map[string]any{"email": "a@b.cv"}, ""))
	require.NoError(t, tx.SetRequestParams(map[string]any{
		"merchantRef":      "ORDER-77",
		"languageMessages": "en",
		"currency":         "EUR",
		"billAddrCity":     "Praia",
		"billAddrLine1":    "Rua 1",
		"billAddrPostCode": 7600,
		"billing":          map[string]any{"billAddrCountry": "132"},
	}))

	got, err := tx.Sign(testReturn)
	require.NoError(t, err)
	assert.Equal(t, "ORDER-77", got.Fields.Get(models.FieldMerchantRef))
	assert.Equal(t, "en", got.Fields.Get(models.FieldLanguageMessages))
	assert.Equal(t, "978", got.Fields.Get(models.FieldCurrency))
	assert.Equal(t, "7600", got.Fields.Get("billAddrPostCode"))
	require.NotNil(t, got.Billing)
	assert.Equal(t, "Praia", got.Billing.BillAddrCity)
}

func TestTransaction_SetRequestParamsRejectsUnknownKeys(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()
	require.NoError(t, tx.Purchase("10", nil, ""))

	err := tx.SetRequestParams(map[string]any{"posID": "1", "merchantRef": "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "parameter not allowed: posID")

	got, err := tx.Sign(testReturn)
	require.NoError(t, err)
	assert.Equal(t, "R20240115103000", got.Fields.Get(models.FieldMerchantRef), "rejected batches are not applied")
}

func TestTransaction_SetRequestParamsRejectsBadBillingAtomically(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()
	require.NoError(t, tx.Purchase("10", nil, ""))

	err := tx.SetRequestParams(map[string]any{
		"merchantRef": "X1",
		"email":       "x@y.cv",
		"billing":     5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "billing must be a map")

	got, err := tx.Sign(testReturn)
	require.NoError(t, err)
	assert.Equal(t, "R20240115103000", got.Fields.Get(models.FieldMerchantRef))
	assert.Nil(t, got.Billing)
	assert.False(t, got.Fields.Has(models.FieldPurchaseRequest))
}

func TestTransaction_Refund(t *testing.T) {
	c := newTestClient(t)

	tx := c.NewTransaction()
	require.NoError(t, tx.Refund("1000", "REF001", "", "TX12345", "1234"))
	got, err := tx.Sign(testReturn)
	require.NoError(t, err)
	assert.Equal(t,
		"ryUWYHpDEkOt//hYeneQ3bR6pnMcRexypBMbfZCnqdG9LTjh14DY4CxQg5pqXAMSeOgDqzUCAvu20W4mx4MZwQ==",
		got.Fingerprint())

	tx = c.NewTransaction()
	require.NoError(t, tx.Refund(100.5, "REF001", "", "TX12345", "1234"))
	_, err = tx.Sign(testReturn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-integer")
}

func TestTransaction_InvalidAmount(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()

	err := tx.Purchase("-10", nil, "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	require.NoError(t, tx.Purchase("10", nil, ""), "a rejected preparation leaves the transaction unprepared")
}

func TestTransaction_PaymentForm(t *testing.T) {
	c := newTestClient(t)
	tx := c.NewTransaction()

	require.NoError(t, tx.Recharge(500, "10021", "9912345"))
	html, err := tx.PaymentForm(testReturn)
	require.NoError(t, err)
	assert.True(t, strings.Contains(html, `name="transactionCode" value="3"`))

	_, err = tx.PaymentForm(testReturn)
	assert.True(t, errors.Is(err, ErrAlreadyPrepared))
}
