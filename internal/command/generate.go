package command

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/agentkey/internal/common"
	"github.com/AlexZinkM/agentkey/internal/config"
	"github.com/AlexZinkM/agentkey/internal/model"
	"github.com/AlexZinkM/agentkey/internal/wallet"

	"github.com/spf13/cobra"
)

var errMainnetRefused = errors.New("mainnet key generation refused")

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a testnet agent keypair",
		Long: `Generate a new keypair on testnet and print it once together with the
AGENT_PRIVATE_KEY line for your secret store and a faucet link.

Nothing is written to disk and no network calls are made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := wallet.NewProvider(cfg.Chain)
			if err != nil {
				return err
			}

			// Production keys are never generated here
			if model.Network(network) == model.NetworkMainnet {
				return fmt.Errorf("generate only creates %s keys: %w", model.NetworkTestnet, errMainnetRefused)
			}

			rec, err := wallet.GenerateWallet(provider, model.Network(network))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			var qr string
			if cfg.ShowQR && common.IsTerminal(out) {
				qr, err = common.AddressQR(rec.Address)
				if err != nil {
					return err
				}
			}

			return wallet.PrintCredentials(out, rec, provider.FaucetURL(rec.Network), qr)
		},
	}

	// Generation is pinned to testnet; the flag only exists for tests and tooling
	cmd.Flags().StringVar(&network, "network", string(model.NetworkTestnet), "network selector")
	_ = cmd.Flags().MarkHidden("network")

	return cmd
}
