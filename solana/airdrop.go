package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/agentkey/internal/client"
	"github.com/AlexZinkM/agentkey/internal/common"
	"github.com/AlexZinkM/agentkey/internal/model"
)

// RequestAirdrop funds address on testnet through the cluster faucet.
// Mainnet has no faucet and is always refused.
func (p *Provider) RequestAirdrop(ctx context.Context, rpcURL, address, amount string, network model.Network) (*model.AirdropResult, error) {
	if network != model.NetworkTestnet {
		return nil, fmt.Errorf("airdrop is only available on %s: %w", model.NetworkTestnet, model.ErrUnsupportedNetwork)
	}

	if err := p.ValidateAddress(address, network); err != nil {
		return nil, err
	}

	// Convert amount to lamports (string-based, no float precision loss)
	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	if lamports == 0 {
		return nil, fmt.Errorf("invalid amount: must be greater than zero")
	}

	if rpcURL == "" {
		rpcURL = testnetRPCURL
	}

	solanaClient, err := client.NewSolanaClient(rpcURL, address)
	if err != nil {
		return nil, fmt.Errorf("failed to create Solana client: %w", err)
	}

	txID, err := solanaClient.RequestAirdrop(ctx, lamports)
	if err != nil {
		return nil, model.NewUpstreamError(ChainName, "airdrop", err)
	}

	link, err := p.ExplorerURL(txID, network)
	if err != nil {
		return nil, err
	}

	return &model.AirdropResult{
		Address:     address,
		Lamports:    lamports,
		TxID:        txID,
		ExplorerURL: link,
	}, nil
}
