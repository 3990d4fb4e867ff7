package command

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexZinkM/agentkey/internal/common"
	"github.com/AlexZinkM/agentkey/internal/config"
	"github.com/AlexZinkM/agentkey/internal/model"
	"github.com/AlexZinkM/agentkey/solana"

	"github.com/spf13/cobra"
)

const airdropTimeout = 30 * time.Second

func newAirdropCmd(cfg *config.Config) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "airdrop <address>",
		Short: "Request testnet SOL for an address",
		Long: `Request testnet SOL from the cluster faucet and print the airdrop
transaction link. Only available for the solana chain on testnet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Chain != solana.ChainName {
				return fmt.Errorf("airdrop is only supported for the %s chain: %w", solana.ChainName, model.ErrUnsupportedChain)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), airdropTimeout)
			defer cancel()

			res, err := solana.NewProvider().RequestAirdrop(ctx, cfg.SolanaTestnetRPCURL, args[0], amount, model.NetworkTestnet)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Airdrop requested: %s SOL to %s\n", common.LamportsToSOL(res.Lamports), res.Address)
			fmt.Fprintf(out, "Transaction: %s\n", res.TxID)
			fmt.Fprintf(out, "Explorer:    %s\n", res.ExplorerURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", cfg.AirdropSOL, "amount of SOL to request")

	return cmd
}
