package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/skincare-storefront/utils"
)

// CreateSessionHandler starts an empty storefront and returns its bearer token.
func (h *Handler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Session API]")

	ctx, cancel := requestContext(r)
	defer cancel()

	sf := h.Sessions.Create(ctx)
	token, err := utils.GenerateToken(sf.ID, h.SessionTTL)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to sign token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to create session", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Session %s created", sf.ID))
	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"session_id": sf.ID,
		"token":      token,
		"expires_in": int64(h.SessionTTL.Seconds()),
	})
}

// EndSessionHandler stops the session's background timers and forgets it in memory.
// Persisted data stays, so the same token rehydrates the session later.
func (h *Handler) EndSessionHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	h.Sessions.Drop(sf.ID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"success": true})
}
