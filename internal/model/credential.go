package model

// CredentialRecord is a freshly generated keypair ready for display.
// It is never persisted; PrivateKey is excluded from JSON on purpose.
type CredentialRecord struct {
	Chain      string  `json:"chain"`
	Network    Network `json:"network"`
	Address    string  `json:"address"`
	PublicKey  string  `json:"publicKey"`
	PrivateKey string  `json:"-"` // hex encoded, sensitive
}
