package handler

import (
	"net/http"

	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/naming"
)

// HandleReloadAliases re-reads the alias and theme files
func HandleReloadAliases(resolver naming.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := resolver.Reload(); err != nil {
			log.Error("Failed to reload aliases", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadConfigFailed)
			return
		}

		log.Info("Aliases reloaded", "theme", resolver.GetActiveTheme())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgConfigReloadedSuccess})
	}
}
