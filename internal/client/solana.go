package client

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient   *rpc.Client
	ownerPubkey solana.PublicKey // address passed to NewSolanaClient
}

// NewSolanaClient creates a new Solana client for the given endpoint and address.
func NewSolanaClient(rpcURL, address string) (*SolanaClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("rpc url is empty")
	}

	ownerPubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address: %w", err)
	}

	return &SolanaClient{
		rpcClient:   rpc.New(rpcURL),
		ownerPubkey: ownerPubkey,
	}, nil
}

// RequestAirdrop asks the cluster faucet to credit lamports to the client's address.
// Returns the airdrop transaction signature.
func (c *SolanaClient) RequestAirdrop(ctx context.Context, lamports uint64) (string, error) {
	sig, err := c.rpcClient.RequestAirdrop(ctx, c.ownerPubkey, lamports, rpc.CommitmentConfirmed)
	if err != nil {
		return "", fmt.Errorf("failed to request airdrop: %w", err)
	}
	return sig.String(), nil
}
