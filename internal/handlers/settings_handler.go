// File: internal/handlers/settings_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chadhq/chad-backend/internal/middleware"
	"github.com/chadhq/chad-backend/internal/uistate"
)

type SettingsHandler struct {
	States *uistate.Store
}

func NewSettingsHandler(store *uistate.Store) *SettingsHandler {
	return &SettingsHandler{States: store}
}

// GetState returns the user's shell state, defaults included.
func (h *SettingsHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.States.Get(userID))
}

type stateUpdateRequest struct {
	Theme         *string `json:"theme"`
	ActiveTab     *string `json:"active_tab"`
	Notifications *bool   `json:"notifications"`
}

// UpdateState applies the fields present in the body and returns the
// resulting state. Unknown theme or tab values reject the whole request.
func (h *SettingsHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req stateUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	state := h.States.Get(userID)
	var err error
	if req.Theme != nil {
		if state, err = h.States.SetTheme(userID, *req.Theme); err != nil {
			writeError(w, "Unknown theme", http.StatusBadRequest)
			return
		}
	}
	if req.ActiveTab != nil {
		if state, err = h.States.SetActiveTab(userID, *req.ActiveTab); err != nil {
			writeError(w, "Unknown tab", http.StatusBadRequest)
			return
		}
	}
	if req.Notifications != nil {
		state = h.States.SetNotifications(userID, *req.Notifications)
	}

	writeJSON(w, http.StatusOK, state)
}
