package vinti4net

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

const (
	// defaultPhoneCC is Cabo Verde's calling code.
	defaultPhoneCC = "238"
	// defaultCountry is Cabo Verde's ISO 3166-1 numeric code.
	defaultCountry = "132"
)

var (
	nonDigits          = regexp.MustCompile(`\D+`)
	phonePrefixPattern = regexp.MustCompile(`^(?:\+|00)(\d{1,3})`)
)

// requiredBillingFields must all be present for a 3-D Secure purchase.
var requiredBillingFields = []string{
	"billAddrCountry", "billAddrCity", "billAddrLine1", "billAddrPostCode", "email",
}

// NormalizeBilling turns a loosely shaped billing map into the gateway's
// 3-D Secure payload.
//
// Gateway-named keys (billAddrCity, mobilePhone, ...) win. Missing values are
// taken from an optional nested "user" map using application names (city,
// address, phone, created_at, ...). Every missing required field is reported
// in a single *MissingBillingFieldError.
func NormalizeBilling(billing map[string]any) (models.Billing, error) {
	top := make(map[string]any, len(billing))
	for k, v := range billing {
		top[k] = v
	}
	user, _ := toStringMap(top["user"])
	delete(top, "user")

	pick := func(key string, userKeys ...string) string {
		if s := stringValue(top[key]); s != "" {
			return s
		}
		for _, uk := range userKeys {
			if s := stringValue(user[uk]); s != "" {
				return s
			}
		}
		return ""
	}

	b := models.Billing{
		Email:            pick("email", "email"),
		BillAddrCountry:  pick("billAddrCountry", "country", "billAddrCountry"),
		BillAddrCity:     pick("billAddrCity", "city", "billAddrCity"),
		BillAddrLine1:    pick("billAddrLine1", "address", "billAddrLine1"),
		BillAddrLine2:    pick("billAddrLine2", "address2", "billAddrLine2"),
		BillAddrLine3:    pick("billAddrLine3", "address3", "billAddrLine3"),
		BillAddrPostCode: pick("billAddrPostCode", "postCode", "postalCode", "billAddrPostCode"),
		BillAddrState:    pick("billAddrState", "state", "billAddrState"),
		ShipAddrCountry:  pick("shipAddrCountry", "shipCountry"),
		ShipAddrCity:     pick("shipAddrCity", "shipCity"),
		ShipAddrLine1:    pick("shipAddrLine1", "shipAddress"),
		ShipAddrPostCode: pick("shipAddrPostCode", "shipPostalCode", "shipPostCode"),
		ShipAddrState:    pick("shipAddrState", "shipState"),
		AcctID:           pick("acctID", "id", "acctID"),
	}
	if b.BillAddrCountry == "" {
		b.BillAddrCountry = defaultCountry
	}

	if v, ok := firstPresent(top["addrMatch"], user["addrMatch"]); ok {
		b.AddrMatch = addrMatchValue(v)
	}

	if v, ok := firstPresent(top["mobilePhone"], user["mobilePhone"], user["phone"]); ok {
		b.MobilePhone = parsePhone(v, pick("mobilePhoneCC", "mobilePhoneCC"))
	}
	if v, ok := firstPresent(top["workPhone"], user["workPhone"]); ok {
		b.WorkPhone = parsePhone(v, pick("workPhoneCC", "workPhoneCC"))
	}

	b.AcctInfo = acctInfo(top, user)

	if missing := missingBillingFields(b); len(missing) > 0 {
		return models.Billing{}, &MissingBillingFieldError{Fields: missing}
	}
	return b, nil
}

// BillingFromUser normalizes an application user record on its own.
func BillingFromUser(user map[string]any) (models.Billing, error) {
	return NormalizeBilling(map[string]any{"user": user})
}

// PurchaseRequest encodes the billing payload for the purchaseRequest field:
// Base64 of the UTF-8 JSON document.
func PurchaseRequest(b models.Billing) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return "", fmt.Errorf("vinti4net: encode billing: %w", err)
	}
	return base64.StdEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func missingBillingFields(b models.Billing) []string {
	values := map[string]string{
		"billAddrCountry":  b.BillAddrCountry,
		"billAddrCity":     b.BillAddrCity,
		"billAddrLine1":    b.BillAddrLine1,
		"billAddrPostCode": b.BillAddrPostCode,
		"email":            b.Email,
	}
	var missing []string
	for _, f := range requiredBillingFields {
		if values[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

func acctInfo(top, user map[string]any) *models.AcctInfo {
	created := dateValue(user["created_at"])
	updated := dateValue(user["updated_at"])

	info := &models.AcctInfo{
		ChAccAgeInd:      models.AcctIndicatorUnavailable,
		ChAccChange:      updated,
		ChAccDate:        created,
		ChAccPwChange:    updated,
		ChAccPwChangeInd: models.AcctIndicatorUnavailable,
	}
	if created != "" {
		info.ChAccAgeInd = models.AcctIndicatorKnown
	}
	if updated != "" {
		info.ChAccPwChangeInd = models.AcctIndicatorKnown
	}
	if s := stringValue(user["chAccAgeInd"]); s != "" {
		info.ChAccAgeInd = s
	}
	if s := stringValue(user["chAccPwChangeInd"]); s != "" {
		info.ChAccPwChangeInd = s
	}
	if v, ok := firstPresent(top["suspicious"], user["suspicious"]); ok {
		info.SuspiciousAccActivity = models.SuspiciousNo
		if truthy(v) {
			info.SuspiciousAccActivity = models.SuspiciousYes
		}
	}

	// An explicit acctInfo block overrides the derived values.
	if explicit, ok := toStringMap(top["acctInfo"]); ok {
		override := func(dst *string, key string) {
			if s := stringValue(explicit[key]); s != "" {
				*dst = s
			}
		}
		override(&info.ChAccAgeInd, "chAccAgeInd")
		override(&info.ChAccChange, "chAccChange")
		override(&info.ChAccDate, "chAccDate")
		override(&info.ChAccPwChange, "chAccPwChange")
		override(&info.ChAccPwChangeInd, "chAccPwChangeInd")
		override(&info.SuspiciousAccActivity, "suspiciousAccActivity")
	}
	return info
}

// parsePhone accepts {cc, subscriber} maps, models.Phone values or raw
// strings. Raw strings keep only their digits; the calling code comes from
// explicitCC, a leading +/00 prefix, or defaults to 238.
func parsePhone(v any, explicitCC string) *models.Phone {
	switch p := v.(type) {
	case models.Phone:
		return normalizedPhone(p.CC, p.Subscriber, explicitCC)
	case *models.Phone:
		if p == nil {
			return nil
		}
		return normalizedPhone(p.CC, p.Subscriber, explicitCC)
	}
	if m, ok := toStringMap(v); ok {
		return normalizedPhone(stringValue(m["cc"]), stringValue(m["subscriber"]), explicitCC)
	}

	raw := strings.TrimSpace(stringValue(v))
	subscriber := nonDigits.ReplaceAllString(raw, "")
	if subscriber == "" {
		return nil
	}
	cc := explicitCC
	if cc == "" {
		if m := phonePrefixPattern.FindStringSubmatch(raw); m != nil {
			cc = m[1]
		}
	}
	if cc == "" {
		cc = defaultPhoneCC
	}
	return &models.Phone{CC: cc, Subscriber: subscriber}
}

func normalizedPhone(cc, subscriber, explicitCC string) *models.Phone {
	subscriber = nonDigits.ReplaceAllString(subscriber, "")
	if subscriber == "" {
		return nil
	}
	cc = nonDigits.ReplaceAllString(cc, "")
	if cc == "" {
		cc = explicitCC
	}
	if cc == "" {
		cc = defaultPhoneCC
	}
	return &models.Phone{CC: cc, Subscriber: subscriber}
}

func addrMatchValue(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "Y"
		}
		return "N"
	}
	return strings.ToUpper(stringValue(v))
}

// dateValue reformats a timestamp (string, time.Time or unix seconds) as
// YYYYMMDD; unparsable values count as absent.
func dateValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return ""
	}
	t, err := cast.ToTimeE(v)
	if err != nil || t.IsZero() {
		return ""
	}
	return t.Format("20060102")
}

// truthy follows the loose boolean rules of form and JSON data: "0", "",
// "false" and zero are false, any other non-empty value is true.
func truthy(v any) bool {
	if b, err := cast.ToBoolE(v); err == nil {
		return b
	}
	s := strings.TrimSpace(stringValue(v))
	return s != "" && s != "0"
}

func firstPresent(vs ...any) (any, bool) {
	for _, v := range vs {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case map[any]any:
		out, err := cast.ToStringMapE(m)
		return out, err == nil
	}
	return nil, false
}
