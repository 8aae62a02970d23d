package vinti4net

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument marks malformed or disallowed caller input.
	ErrInvalidArgument = errors.New("vinti4net: invalid argument")

	// ErrAlreadyPrepared is returned when a Transaction is prepared or
	// signed a second time.
	ErrAlreadyPrepared = errors.New("vinti4net: transaction already prepared")

	// ErrNotPrepared is returned when signing a Transaction that was never
	// prepared.
	ErrNotPrepared = errors.New("vinti4net: no transaction prepared")

	// ErrInvalidCurrency is returned for unknown currency symbols.
	ErrInvalidCurrency = errors.New("vinti4net: invalid currency")
)

// InvalidArgumentError names the offending field.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return "vinti4net: " + e.Message
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(field, format string, args ...any) error {
	return &InvalidArgumentError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// MissingBillingFieldError lists every required billing field that was absent.
type MissingBillingFieldError struct {
	Fields []string
}

func (e *MissingBillingFieldError) Error() string {
	return "vinti4net: missing required billing fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingBillingFieldError) Unwrap() error { return ErrInvalidArgument }

// CurrencyError reports a currency that is neither a known symbol nor numeric.
type CurrencyError struct {
	Value string
}

func (e *CurrencyError) Error() string {
	return fmt.Sprintf("vinti4net: invalid currency: %q", e.Value)
}

func (e *CurrencyError) Unwrap() error { return ErrInvalidCurrency }
