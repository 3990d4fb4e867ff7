// agentkey bootstraps testnet wallets for payment agents and formats
// block explorer links for their transactions.
//
// Usage:
//
//	go run ./cmd/agentkey generate
//	go run ./cmd/agentkey explorer
package main

import "github.com/AlexZinkM/agentkey/internal/command"

func main() {
	command.Execute()
}
