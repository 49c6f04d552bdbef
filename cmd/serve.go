package cmd

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"goldkarat/internal/interaction/api"
	"goldkarat/internal/interaction/exchangerate"
	"goldkarat/internal/interaction/telegram"
	"goldkarat/internal/metrics"
	"goldkarat/internal/scheduler"
	"goldkarat/internal/usecases"
	"goldkarat/locales"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Keep prices fresh and serve them over Telegram and HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.With("package", "cmd")
		ctx := cmd.Context()

		if cnf.Telegram.Token == "" && cnf.HTTP.Addr == "" {
			return errors.New("nothing to serve: set telegram.token or http.addr")
		}

		// Initialize HTTP clients
		ratesClient := &http.Client{Timeout: cnf.Rates.Timeout}
		telegramClient := &http.Client{Timeout: cnf.Telegram.Timeout}

		// Initialize interactions
		ratesInteractor := exchangerate.NewInteraction(logger, ratesClient, cnf.Rates.URL, cnf.Rates.Base, cnf.Rates.Symbol)

		// Initialize usecases
		loc := cnf.Refresh.Location()
		sched := scheduler.New(ctx, loc)
		collector := metrics.New()

		engine := usecases.NewSpotPriceEngine(logger, ratesInteractor, sched, usecases.WithObserver(collector))
		defer engine.StopAutoRefresh()
		collector.TrackLoading(func() bool { return engine.State().IsLoading })

		// The first fetch happens right away, auto refresh follows on its own period.
		engine.Refresh(ctx)

		if _, err := engine.StartAutoRefresh(cnf.Refresh.Interval); err != nil {
			return err
		}

		g, gCtx := errgroup.WithContext(ctx)

		if cnf.Telegram.Token != "" {
			bundle, err := locales.GetBundle(".")
			if err != nil {
				return err
			}

			telegramInteractor, err := telegram.NewInteraction(logger, cnf.Telegram.Token, telegramClient, cnf.Telegram.Timeout, bundle, engine, loc)
			if err != nil {
				return err
			}

			g.Go(func() error {
				log.Info("starting telegram bot")
				telegramInteractor.Start(gCtx)
				return nil
			})
		}

		if cnf.HTTP.Addr != "" {
			apiInteractor := api.NewInteraction(logger, engine, collector.Handler())

			g.Go(func() error {
				return apiInteractor.Start(gCtx, cnf.HTTP.Addr)
			})
		}

		err := g.Wait()
		log.Info("shutting down", "error", err)
		return err
	},
}
