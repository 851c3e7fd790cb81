package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"binrest/pkg/binance"
)

const keepAliveInterval = 30 * time.Minute

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "open a listen key and print user data events until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client, err := binance.ConnectUserData(viper.GetString("api-key"), viper.GetString("base-url"), clientOptions()...)
		if err != nil {
			return err
		}
		defer client.Close()

		key, err := binance.Decode[binance.ListenKey](ctx, client.StartUserDataStream())
		if err != nil {
			return err
		}
		defer func() {
			// ctx may already be cancelled here.
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.CloseUserDataStream(key.ListenKey).JSON(closeCtx, nil); err != nil {
				logger.Warn().Err(err).Msg("failed to close listen key")
			}
		}()

		go keepAlive(ctx, client, key.ListenKey)

		out := cmd.OutOrStdout()
		err = client.Stream(ctx, key.ListenKey, func(event []byte) error {
			name, err := binance.EventType(event)
			if err != nil {
				logger.Warn().Err(err).Msg("event without type")
			} else {
				logger.Debug().Str("event", name).Msg("received")
			}
			_, err = fmt.Fprintln(out, string(event))
			return err
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func keepAlive(ctx context.Context, client *binance.UserDataClient, listenKey string) {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.KeepAliveUserDataStream(listenKey).JSON(ctx, nil); err != nil {
				logger.Error().Err(err).Msg("failed to keep listen key alive")
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(streamCmd)
}
