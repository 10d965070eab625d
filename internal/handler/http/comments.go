package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/go-chi/chi/v5"
)

// createCommentRequest is the JSON body accepted by createComment.
type createCommentRequest struct {
	ReviewID    string `json:"review_id"`
	CommentText string `json:"comment_text"`
}

// updateCommentRequest is the JSON body accepted by updateComment.
type updateCommentRequest struct {
	CommentText string `json:"comment_text"`
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, models.Comment{
		ReviewID:    req.ReviewID,
		UserID:      identity.UserID,
		CommentText: req.CommentText,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

// listMyComments returns every comment owned by the authenticated caller.
func (h *Handler) listMyComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	comments, err := h.services.CommentService.ListUserComments(ctx, identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.UpdateComment(ctx, models.Comment{
		CommentID:   chi.URLParam(r, "commentID"),
		UserID:      identity.UserID,
		CommentText: req.CommentText,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, chi.URLParam(r, "commentID"), identity.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
