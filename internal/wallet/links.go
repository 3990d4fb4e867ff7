package wallet

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlexZinkM/agentkey/internal/model"
)

// SampleTxID is the demonstration transaction id
const SampleTxID = "0x1234567890abcdef"

// GetExplorerURL formats the explorer link for txID. Output is deterministic.
func GetExplorerURL(p ExplorerLinkProvider, txID string, network model.Network) (string, error) {
	link, err := p.ExplorerURL(txID, network)
	if err != nil {
		return "", model.NewUpstreamError(p.Name(), "explorer url", err)
	}
	return link, nil
}

// PrintExplorerLinks writes one line per network. Lines written before a failure stay written.
func PrintExplorerLinks(w io.Writer, p ExplorerLinkProvider, txID string) error {
	for _, network := range model.Networks {
		link, err := GetExplorerURL(p, txID, network)
		if err != nil {
			return err
		}
		label := strings.ToUpper(network.String()[:1]) + network.String()[1:]
		if _, err := fmt.Fprintf(w, "%s URL: %s\n", label, link); err != nil {
			return err
		}
	}
	return nil
}
