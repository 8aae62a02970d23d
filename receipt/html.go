package receipt

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// HTML renders the receipt fragment for a successful callback: a
// div.vinti4-receipt followed by its stylesheet. Unsuccessful results and
// unknown message types produce an "unavailable" notice instead.
func HTML(r models.CallbackResult, opts Options) (string, error) {
	if !r.Success {
		return unavailable(opts, "Transação não concluída com sucesso.", r.AdditionalErrorMessage())
	}

	switch r.MessageType() {
	case models.MessageTypePurchase:
		return purchase(r, opts)
	case models.MessageTypeService:
		return service(r, opts)
	case models.MessageTypeRecharge:
		return recharge(r, opts)
	case models.MessageTypeRefund:
		return refund(r, opts)
	}
	return unavailable(opts, "Recibo indisponível para este tipo de transação.", "")
}

type receiptDoc struct {
	doc  *etree.Document
	root *etree.Element
	body *etree.Element
}

func newReceiptDoc(title, merchant string) *receiptDoc {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true

	root := doc.CreateElement("div")
	root.CreateAttr("class", "vinti4-receipt")

	header := root.CreateElement("div")
	header.CreateAttr("class", "receipt-header")
	header.CreateElement("h2").SetText(title)
	if merchant != "" {
		m := header.CreateElement("div")
		m.CreateAttr("class", "merchant")
		m.SetText(merchant)
	}

	body := root.CreateElement("div")
	body.CreateAttr("class", "receipt-body")
	return &receiptDoc{doc: doc, root: root, body: body}
}

func (d *receiptDoc) section(class string) *etree.Element {
	s := d.body.CreateElement("div")
	s.CreateAttr("class", class)
	return s
}

func row(parent *etree.Element, label, value string) {
	r := parent.CreateElement("div")
	r.CreateAttr("class", "row")
	l := r.CreateElement("span")
	l.CreateAttr("class", "label")
	l.SetText(label + ":")
	v := r.CreateElement("span")
	v.CreateAttr("class", "value")
	v.SetText(value)
}

func (d *receiptDoc) amount(class, value, description string) {
	s := d.section(class)
	a := s.CreateElement("div")
	a.CreateAttr("class", "amount")
	a.SetText(value)
	desc := s.CreateElement("div")
	desc.CreateAttr("class", "description")
	desc.SetText(description)
}

// footer adds the status badge and an optional note line with the given
// class (timestamp, contact or note).
func (d *receiptDoc) footer(status models.Status, noteClass, note string) {
	f := d.root.CreateElement("div")
	f.CreateAttr("class", "receipt-footer")
	s := f.CreateElement("div")
	s.CreateAttr("class", "status "+statusClass(status))
	s.SetText(statusIcon(status) + " " + statusText(status))
	if note != "" {
		n := f.CreateElement("div")
		n.CreateAttr("class", noteClass)
		n.SetText(note)
	}
}

func (d *receiptDoc) render(css string) (string, error) {
	d.doc.CreateElement("style").SetText(css)
	d.doc.Indent(2)
	out, err := d.doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("receipt: render: %w", err)
	}
	return out, nil
}

func issued(opts Options) string {
	return "Emitido em " + nowFunc(opts.Now).Format(displayLayout)
}

func purchase(r models.CallbackResult, opts Options) (string, error) {
	data := r.Data
	d := newReceiptDoc("COMPROVATIVO DE PAGAMENTO", orDefault(opts.Company, "Comerciante"))

	info := d.section("transaction-info")
	row(info, "Referência", orNA(r.MerchantRef()))
	row(info, "Data/Hora", formatTimestamp(data["merchantRespTimeStamp"]))
	row(info, "Transação ID", orNA(r.TransactionID()))

	d.amount("amount-section", resultMoney(r), "Compra")

	card := d.section("card-info")
	row(card, "Cartão", maskedCard(data["merchantRespPan"]))
	row(card, "Autorização", orNA(data["merchantRespMessageID"]))

	if dcc := r.DCC; dcc != nil && dcc.Enabled {
		s := d.section("dcc-info")
		n := s.CreateElement("div")
		n.CreateAttr("class", "dcc-notice")
		n.SetText("Pagamento em moeda estrangeira")
		row(s, "Taxa de câmbio", "1 "+orNA(dcc.Currency)+" = "+orNA(dcc.Rate)+" CVE")
		row(s, "Valor original", dccMoney(dcc))
		row(s, "Margem DCC", orNA(dcc.Markup)+"%")
	}

	d.footer(r.Status, "timestamp", issued(opts))
	return d.render(stylesheet(opts.Styled))
}

func service(r models.CallbackResult, opts Options) (string, error) {
	data := r.Data
	entity := firstOf(data, "merchantRespEntityCode", "entityCode")
	reference := firstOf(data, "merchantRespReferenceNumber", "referenceNumber")

	merchant := orDefault(opts.Company, "Entidade de Serviços")
	if e, ok := LookupEntity(entity); ok {
		merchant = e.Name
	}
	d := newReceiptDoc("COMPROVATIVO DE PAGAMENTO", merchant)

	info := d.section("transaction-info")
	row(info, "Entidade", entity+" ("+EntityName(entity)+")")
	row(info, "Referência", reference)
	row(info, "Data", formatTimestamp(data["merchantRespTimeStamp"]))

	d.amount("amount-section", resultMoney(r), "Pagamento de serviço")

	payment := d.section("payment-info")
	row(payment, "Transação", orNA(r.TransactionID()))

	d.footer(r.Status, "contact", EntityContact(entity))
	return d.render(stylesheet(opts.Styled))
}

func recharge(r models.CallbackResult, opts Options) (string, error) {
	data := r.Data
	entity := firstOf(data, "merchantRespEntityCode", "entityCode")
	number := firstOf(data, "merchantRespReferenceNumber", "referenceNumber")

	merchant := orDefault(opts.Company, "Operadora")
	if e, ok := LookupEntity(entity); ok {
		merchant = e.Name
	}
	d := newReceiptDoc("COMPROVATIVO DE RECARGA", merchant)

	info := d.section("transaction-info")
	row(info, "Número", formatPhone(number))
	row(info, "Data/Hora", formatTimestamp(data["merchantRespTimeStamp"]))
	row(info, "Transação", orNA(r.TransactionID()))

	d.amount("amount-section", resultMoney(r), "Recarga de telemóvel")

	reload := d.section("recharge-info")
	row(reload, "Código", orNA(data["merchantRespReloadCode"]))

	d.footer(r.Status, "note", "A recarga foi creditada com sucesso")
	return d.render(stylesheet(opts.Styled))
}

func refund(r models.CallbackResult, opts Options) (string, error) {
	data := r.Data
	d := newReceiptDoc("COMPROVATIVO DE REEMBOLSO", orDefault(opts.Company, "Comerciante"))

	info := d.section("transaction-info")
	row(info, "Referência original", orNA(r.MerchantRef()))
	row(info, "Transação original", orNA(firstOf(data, "merchantRespTransactionID", "merchantRespTid")))
	row(info, "Data reembolso", formatTimestamp(data["merchantRespTimeStamp"]))

	amount := resultMoney(r)
	if amount != notAvailable {
		amount = "-" + strings.TrimPrefix(amount, "-")
	}
	d.amount("amount-section refund", amount, "Reembolso de pagamento")

	card := d.section("card-info")
	row(card, "Cartão creditado", maskedCard(data["merchantRespPan"]))
	row(card, "Período liquidação", orNA(firstOf(data, "merchantRespClearingPeriod", "merchantRespCP")))

	d.footer(r.Status, "note", "O valor será creditado em 2-3 dias úteis")
	return d.render(stylesheet(opts.Styled))
}

func unavailable(opts Options, message, detail string) (string, error) {
	d := newReceiptDoc("RECIBO INDISPONÍVEL", "")
	d.root.CreateAttr("class", "vinti4-receipt unavailable")
	d.body.CreateElement("p").SetText(message)
	d.body.CreateElement("p").SetText(detail)

	f := d.root.CreateElement("div")
	f.CreateAttr("class", "receipt-footer")
	s := f.CreateElement("div")
	s.CreateAttr("class", "status error")
	s.SetText("⚠ TRANSAÇÃO NÃO CONCLUÍDA")
	ts := f.CreateElement("div")
	ts.CreateAttr("class", "timestamp")
	ts.SetText(issued(opts))

	return d.render(unavailableStyles)
}

func dccMoney(dcc *models.DCC) string {
	amount, err := parseDecimal(dcc.Amount)
	if err != nil {
		return notAvailable
	}
	return formatMoney(amount, currencySymbol(dcc.Currency))
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
