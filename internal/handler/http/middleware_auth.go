package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/rs/zerolog"
)

// auth requires a valid bearer JWT signed with the configured key and
// issuer. The token subject is stored in the context under
// [utils.ClientCtxKey] and added to the request logger as "client".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := utils.WithClient(r.Context(), token.Client)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("client", token.Client)
		})

		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}
