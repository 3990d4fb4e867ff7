// Package evm generates secp256k1 keypairs for EVM chains and formats
// Base explorer links. Testnet is Base Sepolia.
package evm

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AlexZinkM/agentkey/internal/model"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ChainName identifies this collaborator in records and errors
const ChainName = "evm"

var explorerBaseURLs = map[model.Network]string{
	model.NetworkTestnet: "https://sepolia.basescan.org/tx/",
	model.NetworkMainnet: "https://basescan.org/tx/",
}

const faucetURL = "https://www.coinbase.com/faucets/base-ethereum-sepolia-faucet"

// Provider generates EVM keypairs and formats Basescan links
type Provider struct{}

// NewProvider creates a new EVM provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the chain name
func (p *Provider) Name() string {
	return ChainName
}

// GenerateKeypair creates a fresh account. EVM addresses do not differ
// between networks; the selector is still validated.
func (p *Provider) GenerateKeypair(network model.Network) (*model.CredentialRecord, error) {
	if !network.Valid() {
		return nil, unsupported("generate keypair", network)
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, model.NewUpstreamError(ChainName, "generate keypair", err)
	}

	privateKeyBytes := crypto.FromECDSA(key)
	defer clear(privateKeyBytes)

	return &model.CredentialRecord{
		Chain:      ChainName,
		Network:    network,
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PublicKey:  hexutil.Encode(crypto.CompressPubkey(&key.PublicKey)),
		PrivateKey: hexutil.Encode(privateKeyBytes),
	}, nil
}

// ValidateAddress checks for a 20-byte hex address
func (p *Provider) ValidateAddress(address string, network model.Network) error {
	if !network.Valid() {
		return unsupported("validate address", network)
	}
	if !common.IsHexAddress(address) {
		return model.NewUpstreamError(ChainName, "validate address", fmt.Errorf("invalid address %q", address))
	}
	return nil
}

// ExplorerURL returns the Basescan page for a transaction
func (p *Provider) ExplorerURL(txID string, network model.Network) (string, error) {
	base, ok := explorerBaseURLs[network]
	if !ok {
		return "", unsupported("explorer url", network)
	}
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return "", model.NewUpstreamError(ChainName, "explorer url", model.ErrEmptyTransactionID)
	}
	return base + url.PathEscape(txID), nil
}

// FaucetURL returns the Base Sepolia faucet, empty for mainnet
func (p *Provider) FaucetURL(network model.Network) string {
	if network == model.NetworkTestnet {
		return faucetURL
	}
	return ""
}

func unsupported(op string, network model.Network) error {
	return model.NewUpstreamError(ChainName, op, fmt.Errorf("%w: %q", model.ErrUnsupportedNetwork, string(network)))
}
