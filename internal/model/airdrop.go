package model

// AirdropResult is the outcome of a testnet funding request
type AirdropResult struct {
	Address     string `json:"address"`
	Lamports    uint64 `json:"lamports"`
	TxID        string `json:"txId"`
	ExplorerURL string `json:"explorerUrl"`
}
