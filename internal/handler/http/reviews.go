package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/go-chi/chi/v5"
)

// createReviewRequest is the JSON body accepted by createReview. The owner
// is never part of the body; it always comes from the verified identity.
type createReviewRequest struct {
	ItemID     string `json:"item_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

// updateReviewRequest is the JSON body accepted by updateReview. Only the
// author-controlled content fields can change.
type updateReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createReview").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	review, err := h.services.ReviewService.CreateReview(ctx, models.Review{
		UserID:     identity.UserID,
		ItemID:     req.ItemID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.services.ReviewService.GetReview(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

// listMyReviews returns every review owned by the authenticated caller.
func (h *Handler) listMyReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	reviews, err := h.services.ReviewService.ListUserReviews(ctx, identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateReview").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	review, err := h.services.ReviewService.UpdateReview(ctx, models.Review{
		ReviewID:   chi.URLParam(r, "reviewID"),
		UserID:     identity.UserID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.ReviewService.DeleteReview(ctx, chi.URLParam(r, "reviewID"), identity.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
