// Package share delivers quote messages to clients.
package share

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/inkprofit/backend/internal/domain/entity"
	"github.com/inkprofit/backend/internal/domain/valueobject"
)

// QuoteMessage builds the plain-text quote sent to a client.
func QuoteMessage(p *entity.SavedProject) string {
	return fmt.Sprintf(
		"Olá %s! Aqui está o orçamento para sua tattoo:\n\n"+
			"Estilo: %s\n"+
			"Local: %s (%scm x %scm)\n"+
			"Valor Total: %s\n\n"+
			"Podemos agendar?",
		p.ClientName,
		p.Style,
		p.BodyPart,
		formatCm(p.WidthCm),
		formatCm(p.HeightCm),
		valueobject.NewMoney(p.FinalPrice),
	)
}

// WhatsAppLink returns a wa.me click-to-chat link with the message prefilled.
func WhatsAppLink(phoneDigits, message string) string {
	return "https://wa.me/" + phoneDigits + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func quoteHTML(message string) string {
	return "<p>" + strings.ReplaceAll(html.EscapeString(message), "\n", "<br>") + "</p>"
}

func formatCm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
