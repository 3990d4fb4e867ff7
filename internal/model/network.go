package model

import (
	"fmt"
	"strings"
)

// Network selects a chain's production or test network
type Network string

const (
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"
)

// Networks lists every supported selector, testnet first.
var Networks = []Network{NetworkTestnet, NetworkMainnet}

// Valid reports whether n is one of the supported selectors.
func (n Network) Valid() bool {
	return n == NetworkTestnet || n == NetworkMainnet
}

func (n Network) String() string {
	return string(n)
}

// ParseNetwork parses a selector literal. It never falls back to a default network.
func ParseNetwork(s string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedNetwork, s)
	}
	return n, nil
}
