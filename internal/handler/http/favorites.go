package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/go-chi/chi/v5"
)

// createFavoriteRequest is the JSON body accepted by createFavorite.
type createFavoriteRequest struct {
	ItemID string `json:"item_id"`
}

func (h *Handler) createFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createFavorite").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	favorite, err := h.services.FavoriteService.CreateFavorite(ctx, models.Favorite{
		UserID: identity.UserID,
		ItemID: req.ItemID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, favorite, http.StatusCreated)
}

// listMyFavorites returns every favorite owned by the authenticated caller.
func (h *Handler) listMyFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	favorites, err := h.services.FavoriteService.ListUserFavorites(ctx, identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.FavoriteService.DeleteFavorite(ctx, chi.URLParam(r, "favoriteID"), identity.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
