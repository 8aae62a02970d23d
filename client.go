package vinti4net

import (
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// FingerprintVersion is the only fingerprint scheme the gateway supports.
const FingerprintVersion = "1"

// Client prepares signed requests for the Vinti4Net (SISP) gateway and
// classifies its callbacks.
//
// A Client holds no per-request state and is safe for concurrent use. The
// one-shot, stateful builder is Transaction.
type Client struct {
	cfg           Config
	fingerprinter *Fingerprinter
	baseURL       string
	now           func() time.Time
	logger        *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now, which drives default references and
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient validates the configuration and creates a Client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:           cfg,
		fingerprinter: NewFingerprinter(cfg.PosAuthCode),
		baseURL:       cfg.DefaultBaseURL(),
		now:           time.Now,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fingerprinter exposes the signer bound to this client's auth code.
func (c *Client) Fingerprinter() *Fingerprinter {
	return c.fingerprinter
}

// BaseURL returns the gateway endpoint requests are posted to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// sign computes the request fingerprint, stores it in fields and builds the
// redirect URL. Only FingerPrint, TimeStamp and FingerPrintVersion travel in
// the query string.
func (c *Client) sign(fields *models.Fields, family Family) models.PreparedRequest {
	fp := c.fingerprinter.Request(fields, family)
	fields.Set(models.FieldFingerprint, fp)

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	postURL := c.baseURL + sep +
		"FingerPrint=" + url.QueryEscape(fp) +
		"&TimeStamp=" + url.QueryEscape(fields.Get(models.FieldTimeStamp)) +
		"&FingerPrintVersion=" + url.QueryEscape(fields.Get(models.FieldFingerprintVersion))

	c.logger.Debug("request signed",
		zap.String("family", family.String()),
		zap.String("transactionCode", fields.Get(models.FieldTransactionCode)),
		zap.String("merchantRef", fields.Get(models.FieldMerchantRef)),
	)

	return models.PreparedRequest{PostURL: postURL, Fields: fields}
}

func (c *Client) language(explicit string) string {
	switch {
	case explicit != "":
		return explicit
	case c.cfg.Language != "":
		return c.cfg.Language
	}
	return "pt"
}

func (c *Client) responseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return c.cfg.ResponseURL
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
