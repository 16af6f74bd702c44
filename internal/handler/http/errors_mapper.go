package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/MKhiriev/go-secure-storage/models"
)

// ErrorCodeHeader repeats the error code of a failed call so middleware
// can label it without parsing the body.
const ErrorCodeHeader = "X-Error-Code"

var errorStatusMap = map[error]int{
	app.ErrMissingKey:   http.StatusBadRequest,
	app.ErrInvalidData:  http.StatusUnprocessableEntity,
	app.ErrOSError:      http.StatusInternalServerError,
	app.ErrUnknownError: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers a failed call. Whatever err is, the client receives a
// StorageError payload.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var storageErr *app.StorageError
	if !errors.As(service.MapError(err), &storageErr) {
		storageErr = app.NewUnknownError("handler", err)
	}

	logger.FromRequest(r).Err(err).
		Str("code", storageErr.Code()).
		Str("origin", storageErr.Origin).
		Msg("storage call failed")

	w.Header().Set(ErrorCodeHeader, storageErr.Code())
	if _, werr := utils.WriteJSON(w, models.ErrorResponse{
		Message: storageErr.Message,
		Code:    storageErr.Code(),
	}, statusFromError(storageErr)); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "*Handler.writeError").Msg("failed to write error response")
	}
}
