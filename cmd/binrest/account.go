package main

import (
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "show balances and permissions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := accountClient()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.GetAccount().Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

var tradesCmd = &cobra.Command{
	Use:   "trades SYMBOL",
	Short: "list own trades for a symbol",
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

		resp, err := client.GetAccountTrades(args[0]).WithLimit(limit).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "print the exchange clock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := marketClient()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.ToGeneralClient().ServerTime().Send(cmd.Context())
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp)
	},
}

func init() {
	tradesCmd.Flags().Int("limit", 500, "number of trades, 1 to 1000")

	rootCmd.AddCommand(accountCmd, tradesCmd, timeCmd)
}
