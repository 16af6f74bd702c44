package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
)

// checkBodyHash verifies the HMAC-SHA256 of the request body sent in
// [utils.HashHeader]. The body is restored for the next handler.
func (h *Handler) checkBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sum := r.Header.Get(utils.HashHeader)
		if sum == "" {
			log.Err(ErrMissingBodyHash).Str("func", "*Handler.checkBodyHash").Send()
			http.Error(w, ErrMissingBodyHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkBodyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, sum) {
			log.Error().Str("func", "*Handler.checkBodyHash").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			http.Error(w, ErrBodyHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
