package vinti4net

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testPosID    = "90000045"
	testAuthCode = "TEST_AUTH_CODE"
	testReturn   = "https://shop.example.cv/vinti4/callback"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(Config{
		PosID:       testPosID,
		PosAuthCode: testAuthCode,
		Language:    "pt",
	},
		WithClock(func() time.Time { return testNow }),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	return c
}

func testBilling() map[string]any {
	return map[string]any{
		"email":            "a@b.cv",
		"billAddrCountry":  "132",
		"billAddrCity":     "Praia",
		"billAddrLine1":    "Rua 1",
		"billAddrPostCode": "7600",
	}
}
