package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"goldkarat/internal/interaction/exchangerate"
	"goldkarat/internal/model"
	"goldkarat/internal/pricefmt"
	"goldkarat/internal/usecases"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Fetch the spot price once and print the karat table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := &http.Client{Timeout: cnf.Rates.Timeout}
		ratesInteractor := exchangerate.NewInteraction(logger, client, cnf.Rates.URL, cnf.Rates.Base, cnf.Rates.Symbol)

		// No ticker: a one-shot refresh never schedules.
		engine := usecases.NewSpotPriceEngine(logger, ratesInteractor, nil)

		snapshot := engine.Refresh(cmd.Context())
		if snapshot.LastError != nil {
			return fmt.Errorf("refresh gold price: %w", snapshot.LastError)
		}

		out := cmd.OutOrStdout()
		prices := snapshot.Prices

		_, _ = fmt.Fprintf(out, "1 oz t = %s\n", pricefmt.Money(prices.Currency, prices.PerTroyOunce))
		for _, k := range model.Karats {
			_, _ = fmt.Fprintf(out, "%-4s %s\n", k, pricefmt.Money(prices.Currency, prices.At(k)))
		}
		if !prices.QuotedAt.IsZero() {
			_, _ = fmt.Fprintf(out, "quote date %s\n", prices.QuotedAt.Format("2006-01-02"))
		}

		return nil
	},
}
