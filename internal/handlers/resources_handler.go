// File: internal/handlers/resources_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chadhq/chad-backend/internal/services/resources"
)

type ResourcesHandler struct {
	Resources *resources.Service
}

func NewResourcesHandler(service *resources.Service) *ResourcesHandler {
	return &ResourcesHandler{Resources: service}
}

// List filters the catalog by ?search= and ?category=. An absent category
// means all categories.
func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Resources.Filter(r.URL.Query().Get("search"), r.URL.Query().Get("category"))
	if err != nil {
		if errors.Is(err, resources.ErrUnknownCategory) {
			writeError(w, "Unknown category", http.StatusBadRequest)
			return
		}
		writeError(w, "Could not list resources", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns one resource with its body rendered to HTML for the detail
// view.
func (h *ResourcesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.Resources.Get(id)
	if err != nil {
		writeError(w, "Resource not found", http.StatusNotFound)
		return
	}
	body, err := h.Resources.RenderBody(id)
	if err != nil {
		writeError(w, "Could not render resource", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resource": item,
		"body":     body,
	})
}
