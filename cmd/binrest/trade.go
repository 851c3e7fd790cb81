package main

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"binrest/internal/transport"
	"binrest/pkg/core"
)

func init() {
	for _, side := range []core.OrderSide{core.SideBuy, core.SideSell} {
		rootCmd.AddCommand(newSideCmd(side))
	}
}

func newSideCmd(side core.OrderSide) *cobra.Command {
	name := "buy"
	if side == core.SideSell {
		name = "sell"
	}

	sideCmd := &cobra.Command{
		Use:   name,
		Short: name + " on the spot market; the order is only validated unless --execute is set",
	}
	sideCmd.PersistentFlags().Bool("execute", false, "send to the live order endpoint instead of the test endpoint")
	sideCmd.PersistentFlags().String("client-order-id", "", "client order id, generated when empty")

	limitCmd := &cobra.Command{
		Use:   "limit SYMBOL PRICE QTY",
		Short: name + " at a limit price, good till cancelled",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			qty, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			execute, clientOrderID, err := orderFlags(cmd)
			if err != nil {
				return err
			}

			client, err := accountClient()
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.PlaceLimitOrder(args[0], side, price, qty, execute).
				WithNewClientOrderID(clientOrderID).
				WithNewOrderRespType(core.RespFull).
				Send(cmd.Context())
			if err != nil {
				return err
			}
			return printBody(cmd.OutOrStdout(), resp)
		},
	}

	marketCmd := &cobra.Command{
		Use:   "market SYMBOL QTY",
		Short: name + " at the best available price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			quote, err := cmd.Flags().GetBool("quote")
			if err != nil {
				return err
			}
			execute, clientOrderID, err := orderFlags(cmd)
			if err != nil {
				return err
			}

			client, err := accountClient()
			if err != nil {
				return err
			}
			defer client.Close()

			var req interface {
				Send(ctx context.Context) (*transport.Response, error)
			}
			if quote {
				req = client.PlaceQuoteMarketOrder(args[0], side, qty, execute).WithNewClientOrderID(clientOrderID)
			} else {
				req = client.PlaceMarketOrder(args[0], side, qty, execute).WithNewClientOrderID(clientOrderID)
			}

			resp, err := req.Send(cmd.Context())
			if err != nil {
				return err
			}
			return printBody(cmd.OutOrStdout(), resp)
		},
	}
	marketCmd.Flags().Bool("quote", false, "QTY is an amount of the quote asset")

	sideCmd.AddCommand(limitCmd, marketCmd)
	return sideCmd
}

func orderFlags(cmd *cobra.Command) (execute bool, clientOrderID string, err error) {
	if execute, err = cmd.Flags().GetBool("execute"); err != nil {
		return false, "", err
	}
	if clientOrderID, err = cmd.Flags().GetString("client-order-id"); err != nil {
		return false, "", err
	}
	if clientOrderID == "" {
		clientOrderID = uuid.NewString()
	}

	logger.Debug().
		Bool("execute", execute).
		Str("newClientOrderId", clientOrderID).
		Msg("placing order")

	return execute, clientOrderID, nil
}
