package model

// ExplorerLinkResponse represents response for GET /explorer
type ExplorerLinkResponse struct {
	TxID    string  `json:"txId"`
	Network Network `json:"network"`
	Chain   string  `json:"chain"`
	URL     string  `json:"url"`
}
