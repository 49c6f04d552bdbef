package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"goldkarat/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goldkarat",
		Short: "Live gold prices per gram for 24K, 22K, 21K and 18K",
	}

	configPath string

	cnf    *config.Config
	logger *slog.Logger
)

func Execute() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.yml", "path to the config file")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		initConfig()
		initLogger()
	}

	rootCmd.AddCommand(serveCmd, priceCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func initConfig() {
	cnf = config.MustLoad(configPath)
}

func initLogger() {
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
