package command

import (
	"github.com/AlexZinkM/agentkey/internal/config"
	"github.com/AlexZinkM/agentkey/internal/wallet"

	"github.com/spf13/cobra"
)

func newExplorerCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "explorer [txId]",
		Short: "Print testnet and mainnet explorer links for a transaction",
		Long: `Print the block explorer URL of a transaction on both networks.

Without an argument a sample transaction id is used.

Examples:
  agentkey explorer
  AGENTKEY_CHAIN=evm agentkey explorer 0xabc...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := wallet.NewProvider(cfg.Chain)
			if err != nil {
				return err
			}

			txID := wallet.SampleTxID
			if len(args) == 1 {
				txID = args[0]
			}

			return wallet.PrintExplorerLinks(cmd.OutOrStdout(), provider, txID)
		},
	}
}
