package wallet

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlexZinkM/agentkey/internal/model"
)

// EnvPrivateKey is the variable the agent reads its signing key from
const EnvPrivateKey = "AGENT_PRIVATE_KEY"

const bannerRule = "============================================================"

// GenerateWallet delegates keypair generation to p. The network is passed through unchecked.
func GenerateWallet(p CredentialProvider, network model.Network) (*model.CredentialRecord, error) {
	rec, err := p.GenerateKeypair(network)
	if err != nil {
		return nil, model.NewUpstreamError(p.Name(), "generate keypair", err)
	}
	return rec, nil
}

// PrintCredentials writes the operator banner for rec.
// qr is an optional pre-rendered QR code of the address.
func PrintCredentials(w io.Writer, rec *model.CredentialRecord, faucetURL, qr string) error {
	var b strings.Builder

	b.WriteString(bannerRule + "\n")
	fmt.Fprintf(&b, "AGENT WALLET (%s %s)\n", strings.ToUpper(rec.Chain), rec.Network)
	b.WriteString(bannerRule + "\n")
	fmt.Fprintf(&b, "Address:     %s\n", rec.Address)
	fmt.Fprintf(&b, "Public Key:  %s\n", rec.PublicKey)
	fmt.Fprintf(&b, "Private Key: %s\n", rec.PrivateKey)
	b.WriteString(bannerRule + "\n\n")

	b.WriteString("Add this line to your agent's environment (secret store, never git):\n\n")
	fmt.Fprintf(&b, "%s=%s\n\n", EnvPrivateKey, rec.PrivateKey)

	if faucetURL != "" {
		b.WriteString("Fund the address with testnet tokens:\n")
		fmt.Fprintf(&b, "  %s\n", faucetURL)
	}

	if qr != "" {
		b.WriteString("\n")
		b.WriteString(qr)
	}

	// Banner is assembled first and written in one call
	_, err := io.WriteString(w, b.String())
	return err
}
