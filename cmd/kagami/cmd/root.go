package cmd

import (
	"os"

	"github.com/mitsuha/kagami"
	"github.com/mitsuha/kagami/chain"
	"github.com/mitsuha/kagami/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	prefix    string
	network   string
	serverURL string
	logLevel  string
)

var cmdLogger = log.ModuleLogger("cmd")

var rootCmd = &cobra.Command{
	Use:          "kagami",
	Short:        "A reverse name resolution node",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.SetLevel(logLevel); err != nil {
			return errors.Wrap(err, "invalid log level")
		}

		network, err := chain.NetworkFromName(network)
		if err != nil {
			return errors.Wrap(err, "invalid network")
		}

		dd, err := kagami.NewDataDir(prefix)
		if err != nil {
			return errors.Wrap(err, "invalid prefix")
		}
		if err := dd.EnsureNetwork(network.Name); err != nil {
			return errors.Wrap(err, "error creating network directory")
		}

		kagami.Config.Prefix = dd.NetworkPath(network.Name)
		kagami.Config.Network = network
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "~/.kagami", "Sets kagami's data directory")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "main", "Sets kagami's network")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server-url", "u", "", "Sets a custom kagami server url")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Sets the server's API key.")
	rootCmd.PersistentFlags().StringVar(&registryURL, "registry-url", "", "Sets the URL of a remote registry node.")
	rootCmd.PersistentFlags().StringVar(&registryAPIKey, "registry-api-key", "", "Sets the remote registry node's API key.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Sets the log level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
