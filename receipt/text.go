package receipt

import (
	"strings"
	"time"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// Options controls receipt rendering.
type Options struct {
	// Company is printed as the merchant name. Defaults vary per layout.
	Company string
	// Styled selects the full stylesheet; false emits a minimal one.
	Styled bool
	// Now stamps the issue time. Defaults to time.Now.
	Now func() time.Time
}

// Text renders a plain text summary of any callback result, successful or
// not, suitable for storage or e-mail.
func Text(r models.CallbackResult, opts Options) string {
	data := r.Data
	company := opts.Company
	if company == "" {
		company = "Comerciante/Entidade"
	}

	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	b.WriteString("==== RECIBO DE TRANSAÇÃO ====\n")
	line("Empresa", company)
	stamp := data["merchantRespTimeStamp"]
	if stamp == "" {
		stamp = nowFunc(opts.Now).Format(displayLayout)
	}
	line("Data/Hora", stamp)
	if r.Success {
		line("Status", "APROVADA")
	} else {
		line("Status", "NÃO CONCLUÍDA")
	}
	line("Mensagem", orNA(r.Message))
	b.WriteByte('\n')

	line("Transação ID", orNA(r.TransactionID()))
	line("Referência", orNA(r.MerchantRef()))
	line("Tipo de Transação", transactionType(r.MessageType()))

	if _, ok := r.Amount(); ok {
		line("Valor", resultMoney(r))
	}

	if pan := data["merchantRespPan"]; pan != "" {
		line("Cartão", maskedCard(pan))
		line("Autorização", orNA(data["merchantRespMessageID"]))
	}

	if entity := data["merchantRespEntityCode"]; entity != "" {
		line("Entidade", EntityName(entity))
		line("Referência Serviço", orNA(data["merchantRespReferenceNumber"]))
	}

	if dcc := r.DCC; dcc != nil && dcc.Enabled {
		b.WriteString("\n=== DCC (Moeda Estrangeira) ===\n")
		line("Valor original", orNA(dcc.Amount)+" "+orNA(dcc.Currency))
		line("Taxa de câmbio", orNA(dcc.Rate))
		line("Margem DCC", orNA(dcc.Markup)+"%")
	}

	if !r.Success {
		b.WriteString("\n=== DETALHES DE ERRO ===\n")
		detail := r.Detail
		if detail == "" {
			detail = data["merchantRespErrorDetail"]
		}
		b.WriteString(detail)
		b.WriteByte('\n')
		b.WriteString(r.AdditionalErrorMessage())
		b.WriteByte('\n')
	}

	b.WriteString("\n===========================\n")
	return b.String()
}
