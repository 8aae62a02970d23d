package vinti4net

import "strings"

// maskedPANPlaceholder is shown when a PAN is too short to mask safely.
const maskedPANPlaceholder = "•••• •••• •••• ••••"

// MaskPAN keeps the first six and last four digits of a card number. The
// gateway already returns a partially masked PAN; masking again keeps
// receipts safe when a full number slips through.
func MaskPAN(pan string) string {
	pan = strings.ReplaceAll(strings.TrimSpace(pan), " ", "")
	if len(pan) < 8 {
		return maskedPANPlaceholder
	}
	return pan[:6] + "••••" + pan[len(pan)-4:]
}

// brandRanges lists inclusive IIN prefix ranges. Ranges are compared on the
// prefix length of their bounds.
var brandRanges = []struct {
	lo, hi string
	brand  string
}{
	{"4", "4", "visa"},
	{"34", "34", "amex"},
	{"37", "37", "amex"},
	{"51", "55", "mastercard"},
	{"2221", "2720", "mastercard"},
	{"65", "65", "discover"},
	{"644", "649", "discover"},
	{"6011", "6011", "discover"},
	{"622126", "622925", "discover"},
}

// DetectCardBrand returns "visa", "mastercard", "amex", "discover" or "" from
// the leading digits of a card number. Masked numbers work as long as the
// first six digits are intact.
func DetectCardBrand(number string) string {
	for _, r := range brandRanges {
		if len(number) < len(r.lo) {
			continue
		}
		p := number[:len(r.lo)]
		if p >= r.lo && p <= r.hi {
			return r.brand
		}
	}
	return ""
}

// CardBrandLabel maps a brand from DetectCardBrand to its display name.
var CardBrandLabel = map[string]string{
	"visa":       "Visa",
	"mastercard": "Mastercard",
	"amex":       "American Express",
	"discover":   "Discover",
}
