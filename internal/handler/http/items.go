package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/go-chi/chi/v5"
)

// createItemRequest is the JSON body accepted by createItem.
type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.CatalogService.CreateItem(ctx, models.Item{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.CatalogService.GetItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// listItems returns the catalog. The optional "category" query parameter
// narrows the result to a single category.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.CatalogService.ListItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// listItemReviews returns the public review feed of an item, each entry
// enriched with the reviewer's display name.
func (h *Handler) listItemReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.CatalogService.ListItemReviews(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
