package cmd

import (
	"github.com/mitsuha/kagami/chain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <node>",
	Short: "Looks up the name record of a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := chain.NewNodeIDFromHex(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid node")
		}

		client, err := apiClient()
		if err != nil {
			return err
		}
		res, err := client.Name(node)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <address>",
	Short: "Resolves an address back to its name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := chain.NewAddressFromHex(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid address")
		}

		client, err := apiClient()
		if err != nil {
			return err
		}
		res, err := client.Reverse(addr)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var nodeCmd = &cobra.Command{
	Use:   "node <address>",
	Short: "Prints the reverse record node of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := chain.NewAddressFromHex(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid address")
		}

		return printJSON(map[string]interface{}{
			"name": chain.ReverseName(addr),
			"node": chain.ReverseNode(addr),
		})
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(nodeCmd)
}
