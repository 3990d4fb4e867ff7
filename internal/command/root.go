package command

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/agentkey/internal/config"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// NewRootCmd builds the command tree around cfg
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agentkey",
		Short: "Bootstrap agent wallets and format block explorer links",
		Long: `agentkey creates throwaway testnet credentials for payment agents and
prints block explorer links for their transactions.

Configuration (environment variables):
  AGENTKEY_CHAIN          solana or evm (default solana)
  PORT                    HTTP port for "serve" (default 8080)
  SOLANA_TESTNET_RPC_URL  RPC endpoint for "airdrop"
  AIRDROP_SOL             default airdrop amount (default 1)
  SHOW_QR                 print an address QR code on terminals (default true)

Get started:
  $ agentkey generate            # new testnet keypair
  $ agentkey explorer <txId>     # testnet and mainnet links`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newGenerateCmd(cfg),
		newExplorerCmd(cfg),
		newAirdropCmd(cfg),
		newServeCmd(cfg),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "agentkey version %s\n", Version)
		},
	}
}

// Execute loads configuration and runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
