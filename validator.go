package vinti4net

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// TimeStampLayout is the gateway's request timestamp format.
const TimeStampLayout = "2006-01-02 15:04:05"

var (
	digitsPattern          = regexp.MustCompile(`^\d+$`)
	currencyPattern        = regexp.MustCompile(`^\d{3}$`)
	referenceNumberPattern = regexp.MustCompile(`^\d{7,9}$`)
	clearingPeriodPattern  = regexp.MustCompile(`^\d{1,4}$`)
	transactionIDPattern   = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)
)

// paramRule checks one field. fields gives access to siblings such as
// transactionCode for context-dependent rules.
type paramRule func(value string, fields *models.Fields) string

type namedRule struct {
	field string
	check paramRule
}

// paramRules is the full rule table. Fields without a rule are accepted.
var paramRules = []namedRule{
	{models.FieldTransactionCode, func(v string, _ *models.Fields) string {
		switch models.TransactionCode(v) {
		case models.TransactionPurchase, models.TransactionService,
			models.TransactionRecharge, models.TransactionRefund:
			return ""
		}
		return "invalid transactionCode: allowed values are 1, 2, 3, 4"
	}},
	{models.FieldPosID, func(v string, _ *models.Fields) string {
		if posIDPattern.MatchString(v) {
			return ""
		}
		return "posID must have 1 to 9 digits"
	}},
	{models.FieldMerchantRef, maxLength("merchantRef", 15)},
	{models.FieldMerchantSession, maxLength("merchantSession", 15)},
	{models.FieldAmount, func(v string, _ *models.Fields) string {
		if !digitsPattern.MatchString(v) {
			return "amount must be a non-negative integer without decimal places"
		}
		if len(v) > 13 {
			return "amount must have at most 13 digits"
		}
		return ""
	}},
	{models.FieldCurrency, func(v string, f *models.Fields) string {
		if models.TransactionCode(f.Get(models.FieldTransactionCode)).IsRefund() && v != formatCurrency(CurrencyCVE) {
			return "currency for refunds must be 132 (CVE)"
		}
		if !currencyPattern.MatchString(v) {
			return "currency must be a 3 digit ISO 4217 numeric code"
		}
		return ""
	}},
	{models.FieldURLMerchantResponse, func(v string, _ *models.Fields) string {
		if isAbsoluteURL(v) {
			return ""
		}
		return "urlMerchantResponse must be a valid absolute URL"
	}},
	{models.FieldLanguageMessages, func(v string, _ *models.Fields) string {
		switch strings.ToLower(v) {
		case "pt", "en", "fr":
			return ""
		}
		return "languageMessages must be pt, en or fr"
	}},
	{models.FieldEntityCode, func(v string, f *models.Fields) string {
		if requiresEntity(f) && strings.TrimSpace(v) == "" {
			return "entityCode is required for transactionCode 2 and 3"
		}
		return ""
	}},
	{models.FieldReferenceNumber, func(v string, f *models.Fields) string {
		if v == "" && !requiresEntity(f) {
			return ""
		}
		if referenceNumberPattern.MatchString(v) {
			return ""
		}
		return "referenceNumber must have 7 to 9 digits"
	}},
	{models.FieldClearingPeriod, func(v string, _ *models.Fields) string {
		if clearingPeriodPattern.MatchString(v) {
			return ""
		}
		return "clearingPeriod must have 1 to 4 digits"
	}},
	{models.FieldTransactionID, func(v string, _ *models.Fields) string {
		if transactionIDPattern.MatchString(v) {
			return ""
		}
		return "transactionID must have 1 to 8 alphanumeric characters"
	}},
	{"acctID", maxLength("acctID", 64)},
	{"email", func(v string, _ *models.Fields) string {
		if isEmail(v) {
			return ""
		}
		return "invalid email address"
	}},
	{models.FieldTimeStamp, func(v string, _ *models.Fields) string {
		t, err := time.Parse(TimeStampLayout, v)
		if err != nil || t.Format(TimeStampLayout) != v {
			return "timeStamp must use the format yyyy-MM-dd HH:mm:ss"
		}
		return ""
	}},
}

var rulesByField = func() map[string]paramRule {
	m := make(map[string]paramRule, len(paramRules))
	for _, r := range paramRules {
		m[r.field] = r.check
	}
	return m
}()

// ValidateParams checks fields in their insertion order and returns the
// first failure as an *InvalidArgumentError.
func ValidateParams(fields *models.Fields) error {
	for _, key := range fields.Keys() {
		if err := validateField(key, fields); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAllParams reports every failing field. Use multierr.Errors to get
// the individual *InvalidArgumentError values.
func ValidateAllParams(fields *models.Fields) error {
	var errs error
	for _, key := range fields.Keys() {
		errs = multierr.Append(errs, validateField(key, fields))
	}
	return errs
}

func validateField(key string, fields *models.Fields) error {
	rule, ok := rulesByField[key]
	if !ok {
		return nil
	}
	if msg := rule(fields.Get(key), fields); msg != "" {
		return &InvalidArgumentError{Field: key, Message: msg}
	}
	return nil
}

func maxLength(field string, n int) paramRule {
	return func(v string, _ *models.Fields) string {
		if len(v) <= n {
			return ""
		}
		return field + " must have at most " + strconv.Itoa(n) + " characters"
	}
}

func requiresEntity(f *models.Fields) bool {
	switch models.TransactionCode(f.Get(models.FieldTransactionCode)) {
	case models.TransactionService, models.TransactionRecharge:
		return true
	}
	return false
}

func isAbsoluteURL(v string) bool {
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil {
		return false
	}
	return addr.Address == v && addr.Name == ""
}
