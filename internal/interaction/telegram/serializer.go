package telegram

import (
	"fmt"
	"html"
	"strings"

	"goldkarat/internal/model"
	"goldkarat/internal/pricefmt"
)

// PricesToString returns a string representation of the prices to send to the user.
func (that *Interaction) PricesToString(languageCode string, snapshot model.Snapshot) string {
	var sb strings.Builder

	if !snapshot.HasPrices() {
		text, _ := that.renderLocaledMessage(languageCode, "noPricesMessage")
		sb.WriteString(text)
		that.writeError(&sb, languageCode, snapshot)
		return sb.String()
	}

	prices := snapshot.Prices
	title, _ := that.renderLocaledMessage(languageCode, "goldPricesTitle", "Currency", prices.Currency)
	headerKarat, _ := that.renderLocaledMessage(languageCode, "columnKarat")
	headerPrice, _ := that.renderLocaledMessage(languageCode, "columnPrice")

	sb.WriteString(fmt.Sprintf("<b>%s</b>\n<pre>\n", html.EscapeString(title)))
	sb.WriteString(fmt.Sprintf("%-8s %s\n", headerKarat, headerPrice))

	for _, k := range model.Karats {
		sb.WriteString(fmt.Sprintf("%-8s %s\n", k, pricefmt.Money(prices.Currency, prices.At(k))))
	}

	sb.WriteString("</pre>")

	updated, _ := that.renderLocaledMessage(languageCode, "lastUpdatedMessage", "Time", snapshot.LastUpdated.In(that.loc).Format("2006-01-02 15:04:05"))
	sb.WriteString("\n" + updated)

	if !prices.QuotedAt.IsZero() {
		quoted, _ := that.renderLocaledMessage(languageCode, "quotedAtMessage", "Date", prices.QuotedAt.Format("2006-01-02"))
		sb.WriteString("\n" + quoted)
	}

	that.writeError(&sb, languageCode, snapshot)
	return sb.String()
}

func (that *Interaction) writeError(sb *strings.Builder, languageCode string, snapshot model.Snapshot) {
	if snapshot.LastError == nil {
		return
	}

	text, _ := that.renderLocaledMessage(languageCode, "refreshErrorMessage", "Error", snapshot.LastError.Error())
	sb.WriteString("\n" + html.EscapeString(text))
}
