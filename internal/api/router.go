package api

import (
	"log/slog"
	"net/http"

	_ "github.com/AlexZinkM/agentkey/docs"
	"github.com/AlexZinkM/agentkey/internal/handler"
	"github.com/AlexZinkM/agentkey/internal/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(provider wallet.Provider, logger *slog.Logger) (http.Handler, error) {
	explorerHandler, err := handler.NewExplorerHandler(provider, logger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/explorer", explorerHandler.ExplorerLink)
	mux.HandleFunc("/health", explorerHandler.Health)

	return mux, nil
}
