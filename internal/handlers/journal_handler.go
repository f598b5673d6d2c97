// File: internal/handlers/journal_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/chadhq/chad-backend/internal/middleware"
	"github.com/chadhq/chad-backend/internal/services"
	"github.com/chadhq/chad-backend/internal/services/recorder"
	"github.com/chadhq/chad-backend/internal/store/journal"
)

const maxUploadBytes = 32 << 20 // 32MB per recording

type JournalHandler struct {
	Store    *journal.Store
	Recorder *recorder.Service
	Player   *recorder.Player
	Logger   services.Logger

	upgrader websocket.Upgrader
}

func NewJournalHandler(store *journal.Store, rec *recorder.Service, logger services.Logger) *JournalHandler {
	return &JournalHandler{
		Store:    store,
		Recorder: rec,
		Player:   recorder.NewPlayer(),
		Logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  32 * 1024,
			WriteBufferSize: 32 * 1024,
			// The browser client runs on its own origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type entryRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	AudioRefs []string `json:"audio_refs"`
}

// GetEntries lists the journal, newest first.
func (h *JournalHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.Entries(userID))
}

// CreateEntry adds a journal entry. Kind is derived from the audio refs.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.Store.Add(userID, req.Title, req.Content, req.AudioRefs)
	if err != nil {
		if errors.Is(err, journal.ErrInvalidEntry) {
			writeError(w, "An entry needs a title and either text or a recording.", http.StatusBadRequest)
			return
		}
		writeError(w, "Could not save entry", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// UpdateEntry replaces an entry's fields in place. Unknown ids are a silent
// no-op, mirrored here as 404 without side effects.
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, found := h.Store.Update(userID, mux.Vars(r)["id"], req.Title, req.Content, req.AudioRefs)
	if !found {
		writeError(w, "Entry not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteEntry removes an entry. Repeating the call succeeds; delete is
// idempotent.
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.Store.Delete(userID, mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

// TogglePlayback flips the user's playback slot to the given ref.
func (h *JournalHandler) TogglePlayback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Ref string `json:"ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Ref == "" {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	playing := h.Player.Toggle(userID, req.Ref)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ref":     req.Ref,
		"playing": playing,
	})
}

// UploadRecording accepts one whole recording as a multipart upload and
// returns the blob reference for the pending entry.
func (h *JournalHandler) UploadRecording(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, "Missing audio file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rec := h.Recorder.NewUpload(header.Header.Get("Content-Type"))
	if _, err := io.Copy(recordingWriter{rec}, io.LimitReader(file, maxUploadBytes)); err != nil {
		writeError(w, "Could not read audio file", http.StatusBadRequest)
		return
	}

	ref, err := h.Recorder.Finish(r.Context(), rec)
	if err != nil {
		if errors.Is(err, recorder.ErrEmptyRecording) {
			writeError(w, "Recording is empty", http.StatusBadRequest)
			return
		}
		writeError(w, "Could not save recording", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"ref": ref})
}

// RecordStream ingests a recording over a websocket: binary messages carry
// data-available chunks, one text "stop" message finalizes the blob and the
// reference is sent back before the socket closes.
func (h *JournalHandler) RecordStream(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	rec := h.Recorder.NewUpload(r.URL.Query().Get("mime"))
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			h.Logger.Warn("recording stream closed before stop", "error", err.Error())
			return
		}

		switch msgType {
		case websocket.BinaryMessage:
			if err := rec.Append(data); err != nil {
				h.writeSocketError(conn, "recording already finalized")
				return
			}
		case websocket.TextMessage:
			if string(data) != "stop" {
				h.writeSocketError(conn, "unexpected control message")
				return
			}
			ref, err := h.Recorder.Finish(r.Context(), rec)
			if err != nil {
				h.writeSocketError(conn, "could not save recording")
				return
			}
			_ = conn.WriteJSON(map[string]string{"ref": ref})
			return
		}
	}
}

// GetAudio serves a stored recording for playback.
func (h *JournalHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	blob, err := h.Recorder.Blob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Recording not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", blob.MimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob.Data)
}

func (h *JournalHandler) writeSocketError(conn *websocket.Conn, message string) {
	_ = conn.WriteJSON(map[string]string{"error": message})
}

// recordingWriter adapts a Recording to io.Writer for io.Copy.
type recordingWriter struct {
	rec *recorder.Recording
}

func (rw recordingWriter) Write(p []byte) (int, error) {
	if err := rw.rec.Append(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
