package command

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/agentkey/internal/config"
	"github.com/AlexZinkM/agentkey/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(chain string) *config.Config {
	return &config.Config{
		Chain:      chain,
		Port:       "0",
		AirdropSOL: "1",
		ShowQR:     true,
	}
}

// run executes the command tree and returns stdout and stderr
func run(t *testing.T, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := NewRootCmd(cfg)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate(t *testing.T) {
	for _, chain := range []string{"solana", "evm"} {
		t.Run(chain, func(t *testing.T) {
			out, _, err := run(t, testConfig(chain), "generate")
			require.NoError(t, err)

			assert.Contains(t, out, "Address:")
			assert.Contains(t, out, "Public Key:")
			assert.Contains(t, out, "Private Key:")
			assert.Contains(t, out, "AGENT_PRIVATE_KEY=")
			assert.Contains(t, out, "testnet")
			assert.Contains(t, out, "Fund the address")
		})
	}
}

func TestGeneratePrivateKeyLineMatchesBanner(t *testing.T) {
	out, _, err := run(t, testConfig("solana"), "generate")
	require.NoError(t, err)

	var shown, envLine string
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, "Private Key: "); ok {
			shown = v
		}
		if v, ok := strings.CutPrefix(line, "AGENT_PRIVATE_KEY="); ok {
			envLine = v
		}
	}
	require.NotEmpty(t, shown)
	assert.Equal(t, shown, envLine)
}

func TestGenerateUnsupportedNetwork(t *testing.T) {
	out, stderr, err := run(t, testConfig("solana"), "generate", "--network", "devnet")
	require.Error(t, err)
	assert.True(t, model.IsUpstreamError(err))
	assert.ErrorIs(t, err, model.ErrUnsupportedNetwork)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Error:")
}

func TestGenerateRefusesMainnet(t *testing.T) {
	out, _, err := run(t, testConfig("evm"), "generate", "--network", "mainnet")
	require.ErrorIs(t, err, errMainnetRefused)
	assert.Empty(t, out)
}

func TestGenerateRejectsArgs(t *testing.T) {
	_, _, err := run(t, testConfig("solana"), "generate", "mainnet")
	assert.Error(t, err)
}

func TestGenerateUnsupportedChain(t *testing.T) {
	out, _, err := run(t, testConfig("dogecoin"), "generate")
	assert.ErrorIs(t, err, model.ErrUnsupportedChain)
	assert.Empty(t, out)
}

func TestExplorerDefaultSample(t *testing.T) {
	out, _, err := run(t, testConfig("solana"), "explorer")
	require.NoError(t, err)
	assert.Equal(t,
		"Testnet URL: https://explorer.solana.com/tx/0x1234567890abcdef?cluster=testnet\n"+
			"Mainnet URL: https://explorer.solana.com/tx/0x1234567890abcdef\n",
		out)
}

func TestExplorerWithTxID(t *testing.T) {
	out, _, err := run(t, testConfig("evm"), "explorer", "0xfeed")
	require.NoError(t, err)
	assert.Equal(t,
		"Testnet URL: https://sepolia.basescan.org/tx/0xfeed\n"+
			"Mainnet URL: https://basescan.org/tx/0xfeed\n",
		out)
}

// newAirdropRPC answers requestAirdrop with sig and records the requested lamports
func newAirdropRPC(t *testing.T, sig solana.Signature, lamports *uint64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage   `json:"id"`
			Params []json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Params) > 1 {
			json.Unmarshal(req.Params[1], lamports)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": sig.String()})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAirdropPrintsRequestedLamports(t *testing.T) {
	var sig solana.Signature
	sig[0] = 9
	var lamports uint64
	srv := newAirdropRPC(t, sig, &lamports)

	cfg := testConfig("solana")
	cfg.SolanaTestnetRPCURL = srv.URL
	address := solana.NewWallet().PublicKey().String()

	out, _, err := run(t, cfg, "airdrop", address, "--amount", "0.0000000019")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), lamports)
	assert.Contains(t, out, "Airdrop requested: 0.000000001 SOL to "+address)
	assert.NotContains(t, out, "0.0000000019")
}

func TestAirdrop(t *testing.T) {
	var sig solana.Signature
	sig[0] = 7

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": sig.String()})
	}))
	defer srv.Close()

	cfg := testConfig("solana")
	cfg.SolanaTestnetRPCURL = srv.URL
	address := solana.NewWallet().PublicKey().String()

	out, _, err := run(t, cfg, "airdrop", address, "--amount", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Airdrop requested: 0.500000000 SOL to "+address)
	assert.Contains(t, out, sig.String())
	assert.Contains(t, out, "?cluster=testnet")
}

func TestAirdropRequiresSolana(t *testing.T) {
	_, _, err := run(t, testConfig("evm"), "airdrop", "0x000000000000000000000000000000000000dEaD")
	assert.ErrorIs(t, err, model.ErrUnsupportedChain)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, testConfig("solana"), "version")
	require.NoError(t, err)
	assert.Equal(t, "agentkey version dev\n", out)
}
