package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/service"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAuthenticationFailed:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrItemNameAlreadyExists: http.StatusConflict,
	store.ErrReviewAlreadyExists:   http.StatusConflict,
	store.ErrFavoriteAlreadyExists: http.StatusConflict,

	// A write referencing a missing row is a client error: the target the
	// request names does not exist.
	store.ErrReferencedRowMissing: http.StatusNotFound,

	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrItemNotFound:     http.StatusNotFound,
	store.ErrReviewNotFound:   http.StatusNotFound,
	store.ErrCommentNotFound:  http.StatusNotFound,
	store.ErrFavoriteNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status via statusFromError and writes a
// JSON error body. Internal errors are logged with their cause but surfaced
// to the client only as the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
