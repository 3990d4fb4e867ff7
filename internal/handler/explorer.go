package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AlexZinkM/agentkey/internal/model"
	"github.com/AlexZinkM/agentkey/internal/wallet"
)

// ExplorerHandler serves explorer links for one chain
type ExplorerHandler struct {
	provider wallet.Provider
	logger   *slog.Logger
}

// NewExplorerHandler creates a new ExplorerHandler
func NewExplorerHandler(provider wallet.Provider, logger *slog.Logger) (*ExplorerHandler, error) {
	if provider == nil {
		return nil, errors.New("provider is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExplorerHandler{provider: provider, logger: logger}, nil
}

// ExplorerLink handles GET /explorer
// @Summary      Get explorer link
// @Description  Formats the block explorer URL of a transaction for the configured chain
// @Tags         explorer
// @Produce      json
// @Param        txId     query     string  true  "Transaction ID"
// @Param        network  query     string  true  "Network: testnet or mainnet"
// @Success      200  {object}  model.ExplorerLinkResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /explorer [get]
func (h *ExplorerHandler) ExplorerLink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	txID := r.URL.Query().Get("txId")
	network, err := model.ParseNetwork(r.URL.Query().Get("network"))
	if err != nil {
		err = model.NewUpstreamError(h.provider.Name(), "explorer url", err)
		h.logger.Warn("explorer link rejected",
			slog.String("chain", h.provider.Name()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err, "UPSTREAM_FAILURE")
		return
	}

	link, err := wallet.GetExplorerURL(h.provider, txID, network)
	if err != nil {
		h.logger.Warn("explorer link rejected",
			slog.String("chain", h.provider.Name()),
			slog.String("network", string(network)),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err, "UPSTREAM_FAILURE")
		return
	}

	writeJSON(w, http.StatusOK, model.ExplorerLinkResponse{
		TxID:    txID,
		Network: network,
		Chain:   h.provider.Name(),
		URL:     link,
	})
}

// Health handles GET /health
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *ExplorerHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "chain": h.provider.Name()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}
