package models

// Billing is the normalized 3-D Secure payload sent, JSON encoded and base64
// wrapped, in the purchaseRequest field.
type Billing struct {
	Email            string    `json:"email,omitempty"`
	BillAddrCountry  string    `json:"billAddrCountry,omitempty"`
	BillAddrCity     string    `json:"billAddrCity,omitempty"`
	BillAddrLine1    string    `json:"billAddrLine1,omitempty"`
	BillAddrLine2    string    `json:"billAddrLine2,omitempty"`
	BillAddrLine3    string    `json:"billAddrLine3,omitempty"`
	BillAddrPostCode string    `json:"billAddrPostCode,omitempty"`
	BillAddrState    string    `json:"billAddrState,omitempty"`
	ShipAddrCountry  string    `json:"shipAddrCountry,omitempty"`
	ShipAddrCity     string    `json:"shipAddrCity,omitempty"`
	ShipAddrLine1    string    `json:"shipAddrLine1,omitempty"`
	ShipAddrPostCode string    `json:"shipAddrPostCode,omitempty"`
	ShipAddrState    string    `json:"shipAddrState,omitempty"`
	AddrMatch        string    `json:"addrMatch,omitempty"`
	MobilePhone      *Phone    `json:"mobilePhone,omitempty"`
	WorkPhone        *Phone    `json:"workPhone,omitempty"`
	AcctID           string    `json:"acctID,omitempty"`
	AcctInfo         *AcctInfo `json:"acctInfo,omitempty"`
}

// Phone is a phone number split into country calling code and subscriber.
type Phone struct {
	CC         string `json:"cc"`
	Subscriber string `json:"subscriber"`
}

// AcctInfo carries the cardholder account indicators used for 3DS risk
// scoring. Dates are YYYYMMDD.
type AcctInfo struct {
	ChAccAgeInd           string `json:"chAccAgeInd,omitempty"`
	ChAccChange           string `json:"chAccChange,omitempty"`
	ChAccDate             string `json:"chAccDate,omitempty"`
	ChAccPwChange         string `json:"chAccPwChange,omitempty"`
	ChAccPwChangeInd      string `json:"chAccPwChangeInd,omitempty"`
	SuspiciousAccActivity string `json:"suspiciousAccActivity,omitempty"`
}

// Account indicator codes.
const (
	AcctIndicatorUnavailable = "01"
	AcctIndicatorKnown       = "05"

	SuspiciousNo  = "01"
	SuspiciousYes = "02"
)

// Flat returns the scalar billing fields as gateway form fields, in payload
// order. Phones and account info only travel inside purchaseRequest.
func (b Billing) Flat() *Fields {
	f := &Fields{}
	for _, kv := range [][2]string{
		{"email", b.Email},
		{"billAddrCountry", b.BillAddrCountry},
		{"billAddrCity", b.BillAddrCity},
		{"billAddrLine1", b.BillAddrLine1},
		{"billAddrLine2", b.BillAddrLine2},
		{"billAddrLine3", b.BillAddrLine3},
		{"billAddrPostCode", b.BillAddrPostCode},
		{"billAddrState", b.BillAddrState},
		{"shipAddrCountry", b.ShipAddrCountry},
		{"shipAddrCity", b.ShipAddrCity},
		{"shipAddrLine1", b.ShipAddrLine1},
		{"shipAddrPostCode", b.ShipAddrPostCode},
		{"shipAddrState", b.ShipAddrState},
		{"addrMatch", b.AddrMatch},
		{"acctID", b.AcctID},
	} {
		if kv[1] != "" {
			f.Set(kv[0], kv[1])
		}
	}
	return f
}
