package wallet

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/agentkey/evm"
	"github.com/AlexZinkM/agentkey/internal/model"
	"github.com/AlexZinkM/agentkey/solana"
)

// CredentialProvider generates keypairs and validates addresses
type CredentialProvider interface {
	Name() string
	GenerateKeypair(network model.Network) (*model.CredentialRecord, error)
	ValidateAddress(address string, network model.Network) error
}

// ExplorerLinkProvider formats block explorer transaction links
type ExplorerLinkProvider interface {
	Name() string
	ExplorerURL(txID string, network model.Network) (string, error)
}

// Provider is a complete chain collaborator
type Provider interface {
	CredentialProvider
	ExplorerLinkProvider
	FaucetURL(network model.Network) string
}

// Chains lists the supported collaborator names
var Chains = []string{solana.ChainName, evm.ChainName}

// NewProvider returns the collaborator registered under chain
func NewProvider(chain string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(chain)) {
	case solana.ChainName:
		return solana.NewProvider(), nil
	case evm.ChainName:
		return evm.NewProvider(), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", model.ErrUnsupportedChain, chain, strings.Join(Chains, ", "))
	}
}
