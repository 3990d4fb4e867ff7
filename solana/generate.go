package solana

import (
	"encoding/hex"
	"fmt"

	"github.com/AlexZinkM/agentkey/internal/model"

	"github.com/gagliardetto/solana-go"
)

// ChainName identifies this collaborator in records and errors
const ChainName = "solana"

// Provider generates Solana keypairs and formats Solana Explorer links
type Provider struct{}

// NewProvider creates a new Solana provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the chain name
func (p *Provider) Name() string {
	return ChainName
}

// GenerateKeypair generates a new ed25519 keypair for the given network.
// Solana addresses are the same on every cluster, so the network only gates validity.
func (p *Provider) GenerateKeypair(network model.Network) (*model.CredentialRecord, error) {
	if !network.Valid() {
		return nil, model.NewUpstreamError(ChainName, "generate keypair",
			fmt.Errorf("%w: %q", model.ErrUnsupportedNetwork, string(network)))
	}

	wallet := solana.NewWallet()
	// Always clear private key bytes once encoded
	defer clear(wallet.PrivateKey)

	// Address is the base58 public key
	address := wallet.PublicKey().String()

	return &model.CredentialRecord{
		Chain:      ChainName,
		Network:    network,
		Address:    address,
		PublicKey:  address,
		PrivateKey: hex.EncodeToString(wallet.PrivateKey),
	}, nil
}

// ValidateAddress checks that address parses as a Solana public key
func (p *Provider) ValidateAddress(address string, network model.Network) error {
	if !network.Valid() {
		return model.NewUpstreamError(ChainName, "validate address",
			fmt.Errorf("%w: %q", model.ErrUnsupportedNetwork, string(network)))
	}
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return model.NewUpstreamError(ChainName, "validate address", fmt.Errorf("invalid Solana address: %w", err))
	}
	return nil
}
