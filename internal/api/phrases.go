package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/speakwell/speakwell-api/internal/phrases"
)

type PhrasesHandler struct {
	catalog *phrases.Catalog
}

func NewPhrasesHandler(catalog *phrases.Catalog) *PhrasesHandler {
	return &PhrasesHandler{catalog: catalog}
}

func (h *PhrasesHandler) Routes(r chi.Router) {
	r.Get("/phrases", h.List)
	r.Get("/phrases/{id}", h.Get)
}

// List returns the full phrase catalog in insertion order.
func (h *PhrasesHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.All())
}

// Get returns a single phrase by id.
func (h *PhrasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := PathInt(r, "id")
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, ErrInvalidParameter, "invalid phrase ID")
		return
	}

	p, err := h.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, phrases.ErrNotFound) {
			WriteErrorWithCode(w, http.StatusNotFound, ErrNotFound, "phrase not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, "failed to look up phrase")
		return
	}
	WriteJSON(w, http.StatusOK, p)
}
