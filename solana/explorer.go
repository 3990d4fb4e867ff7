package solana

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AlexZinkM/agentkey/internal/model"
)

const (
	explorerBaseURL = "https://explorer.solana.com/tx/"
	faucetURL       = "https://faucet.solana.com"
	testnetRPCURL   = "https://api.testnet.solana.com"
)

// ExplorerURL returns the Solana Explorer page for a transaction.
// Mainnet is the explorer default; other clusters are selected by query parameter.
func (p *Provider) ExplorerURL(txID string, network model.Network) (string, error) {
	if !network.Valid() {
		return "", model.NewUpstreamError(ChainName, "explorer url",
			fmt.Errorf("%w: %q", model.ErrUnsupportedNetwork, string(network)))
	}
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return "", model.NewUpstreamError(ChainName, "explorer url", model.ErrEmptyTransactionID)
	}

	link := explorerBaseURL + url.PathEscape(txID)
	if network == model.NetworkTestnet {
		link += "?cluster=" + string(network)
	}
	return link, nil
}

// FaucetURL returns the funding faucet for network, empty for mainnet
func (p *Provider) FaucetURL(network model.Network) string {
	if network == model.NetworkTestnet {
		return faucetURL
	}
	return ""
}
