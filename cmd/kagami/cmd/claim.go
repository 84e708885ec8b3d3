package cmd

import (
	"github.com/mitsuha/kagami/chain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim <caller> <owner>",
	Short: "Claims the caller's reverse record node for the given owner",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := chain.NewAddressFromHex(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid caller address")
		}
		owner, err := chain.NewAddressFromHex(args[1])
		if err != nil {
			return errors.Wrap(err, "invalid owner address")
		}

		client, err := apiClient()
		if err != nil {
			return err
		}
		res, err := client.Claim(caller, owner)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var setNameCmd = &cobra.Command{
	Use:   "set-name <caller> <name>",
	Short: "Claims the caller's reverse record and points it at a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := chain.NewAddressFromHex(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid caller address")
		}

		client, err := apiClient()
		if err != nil {
			return err
		}
		res, err := client.SetName(caller, args[1])
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

func init() {
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(setNameCmd)
}
