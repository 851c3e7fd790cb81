package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"binrest/pkg/binance"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "list orders",
}

var openOrdersCmd = &cobra.Command{
	Use:   "open [SYMBOL]",
	Short: "list open orders, optionally for one symbol",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := accountClient()
		if err != nil {
			return err
		}
		defer client.Close()

		req := client.GetOpenOrders()
		if len(args) == 1 {
			req = req.WithSymbol(args[0])
		}
		resp, err := req.Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

var allOrdersCmd = &cobra.Command{
	Use:   "all SYMBOL",
	Short: "list every order for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		client, err := accountClient()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.GetAllOrders(args[0]).WithLimit(limit).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "inspect or cancel a single order",
}

var getOrderCmd = &cobra.Command{
	Use:   "get SYMBOL ID",
	Short: "show one order by exchange id or client order id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := accountClient()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.GetOrder(args[0], parseID(args[1])).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

var cancelOrderCmd = &cobra.Command{
	Use:   "cancel SYMBOL ID",
	Short: "cancel one order by exchange id or client order id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := accountClient()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.CancelOrder(args[0], parseID(args[1])).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

// parseID treats a numeric argument as an exchange order id and anything
// else as a client order id.
func parseID(s string) binance.ID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return binance.OrderID(n)
	}
	return binance.ClientOrderID(s)
}

func init() {
	allOrdersCmd.Flags().Int("limit", 500, "number of orders, 1 to 1000")

	ordersCmd.AddCommand(openOrdersCmd, allOrdersCmd)
	orderCmd.AddCommand(getOrderCmd, cancelOrderCmd)
	rootCmd.AddCommand(ordersCmd, orderCmd)
}
