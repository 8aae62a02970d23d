// Package receipt renders customer receipts from classified gateway
// callbacks, as plain text for storage or e-mail and as an HTML fragment.
package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	vinti4net "github.com/hugochinchilla79/vinti4net_sdk"
	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

const (
	notAvailable  = "N/A"
	displayLayout = "02/01/2006 15:04:05"
)

var nonDigits = regexp.MustCompile(`\D`)

// formatMoney renders amounts the Cabo Verde way: "2 500,00 CVE".
func formatMoney(amount decimal.Decimal, symbol string) string {
	ac := accounting.NewAccounting(symbol, 2, " ", ",", "%v %s", "-%v %s", "%v %s")
	return ac.FormatMoneyDecimal(amount)
}

// resultMoney formats the callback amount, or N/A when absent.
func resultMoney(r models.CallbackResult) string {
	amount, ok := r.Amount()
	if !ok {
		return notAvailable
	}
	return formatMoney(amount, currencySymbol(r.Currency()))
}

// currencySymbol maps gateway currency values (numeric or alphabetic) to a
// display symbol. Empty values fall back to CVE.
func currencySymbol(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "CVE"
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return vinti4net.CurrencySymbol(n)
	}
	return strings.ToUpper(raw)
}

// formatTimestamp reformats a gateway timestamp as dd/mm/yyyy hh:mm:ss.
func formatTimestamp(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return notAvailable
	}
	t, err := cast.ToTimeE(raw)
	if err != nil {
		return notAvailable
	}
	return t.Format(displayLayout)
}

// formatPhone groups 7-digit Cabo Verde numbers as "+238 xxx xx xx".
func formatPhone(raw string) string {
	if raw == "" {
		return notAvailable
	}
	clean := nonDigits.ReplaceAllString(raw, "")
	if len(clean) == 7 {
		return "+238 " + clean[:3] + " " + clean[3:5] + " " + clean[5:]
	}
	return raw
}

// maskedCard renders a masked PAN followed by the brand when it is known.
func maskedCard(pan string) string {
	masked := vinti4net.MaskPAN(pan)
	if label, ok := vinti4net.CardBrandLabel[vinti4net.DetectCardBrand(pan)]; ok {
		return masked + " (" + label + ")"
	}
	return masked
}

func transactionType(messageType string) string {
	switch messageType {
	case models.MessageTypePurchase:
		return "Compra"
	case models.MessageTypeService:
		return "Pagamento de Serviço"
	case models.MessageTypeRecharge:
		return "Recarga"
	case models.MessageTypeRefund:
		return "Estorno"
	}
	return notAvailable
}

func statusClass(s models.Status) string {
	switch s {
	case models.StatusSuccess:
		return "success"
	case models.StatusCancelled:
		return "cancelled"
	}
	return "error"
}

func statusIcon(s models.Status) string {
	switch s {
	case models.StatusSuccess:
		return "✓"
	case models.StatusCancelled:
		return "⏹"
	case models.StatusInvalidFingerprint:
		return "⚠"
	}
	return "✗"
}

func statusText(s models.Status) string {
	switch s {
	case models.StatusSuccess:
		return "TRANSAÇÃO APROVADA"
	case models.StatusCancelled:
		return "TRANSAÇÃO CANCELADA"
	case models.StatusInvalidFingerprint:
		return "ERRO DE SEGURANÇA"
	}
	return "TRANSAÇÃO RECUSADA"
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

// firstOf returns the first non-empty value of keys in data.
func firstOf(data map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := data[k]; v != "" {
			return v
		}
	}
	return ""
}

func nowFunc(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now()
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}
