package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"binrest/internal/transport"
	"binrest/pkg/binance"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

var rootCmd = &cobra.Command{
	Use:   "binrest",
	Short: "signed REST calls against the Binance spot API",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			logger = logger.Level(zerolog.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("base-url", binance.BinanceURL, "REST root, e.g. "+binance.BinanceUSURL+" or "+binance.TestnetURL)
	rootCmd.PersistentFlags().String("api-key", "", "API key")
	rootCmd.PersistentFlags().String("api-secret", "", "API secret")
	rootCmd.PersistentFlags().Bool("debug", false, "log every request")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "HTTP timeout")
}

func Execute() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("cannot load .env")
	}

	viper.SetEnvPrefix("binrest")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		logger.Fatal().Err(err).Msg("failed to bind persistent flags")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func clientOptions() []binance.Option {
	return []binance.Option{
		binance.WithLogger(logger),
		binance.WithTimeout(viper.GetDuration("timeout")),
	}
}

func accountClient() (*binance.AccountClient, error) {
	return binance.Connect(viper.GetString("api-key"), viper.GetString("api-secret"), viper.GetString("base-url"), clientOptions()...)
}

func marketClient() (*binance.MarketDataClient, error) {
	return binance.ConnectMarketData(viper.GetString("api-key"), viper.GetString("base-url"), clientOptions()...)
}

// printBody writes the response body as the exchange sent it.
func printBody(w io.Writer, resp *transport.Response) error {
	_, err := fmt.Fprintln(w, string(resp.Body))
	return err
}
