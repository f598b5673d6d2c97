// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chadhq/chad-backend/internal/middleware"
	"github.com/chadhq/chad-backend/internal/services/chatbot"
	"github.com/chadhq/chad-backend/internal/store/session"
)

type ChatHandler struct {
	ChatService *chatbot.Service
}

func NewChatHandler(cs *chatbot.Service) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// Send appends a user message and schedules the bot reply. The reply is
// delivered asynchronously, so the response only names the session.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sessionID, err := h.ChatService.Send(userID, req.Text)
	if err != nil {
		if errors.Is(err, chatbot.ErrEmptyMessage) {
			writeError(w, "Message is empty", http.StatusBadRequest)
			return
		}
		writeError(w, "Could not send message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"session_id": sessionID})
}

// GetSessions lists the user's chat history.
func (h *ChatHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.ChatService.Sessions(userID))
}

// GetSessionMessages returns one session's ordered transcript.
func (h *ChatHandler) GetSessionMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	messages, err := h.ChatService.Messages(userID, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			writeError(w, "Session not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve messages", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// Activate points subsequent sends at an existing session (opening a chat
// from the history view).
func (h *ChatHandler) Activate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.ChatService.Activate(userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NewChat clears the active session so the next send starts fresh.
func (h *ChatHandler) NewChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.ChatService.NewChat(userID)
	w.WriteHeader(http.StatusNoContent)
}
