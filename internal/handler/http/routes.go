package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RPC names used as the last path segment of every storage route.
const (
	RPCSetItem                = "set_item"
	RPCGetItem                = "get_item"
	RPCRemoveItem             = "remove_item"
	RPCClearItemWithPrefix    = "clear_item_with_prefix"
	RPCGetPrefixedKeys        = "get_prefixed_keys"
	RPCSetSynchronizeKeychain = "set_synchronize_keychain"
)

// StoragePath is the route prefix of the storage RPCs.
const StoragePath = "/api/storage/"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// service routes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// storage routes
	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withRateLimit)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)
		if h.tokenSignKey != "" {
			r.Use(h.auth, h.checkBodyHash)
		}

		r.Post(StoragePath+RPCSetItem, h.setItem)
		r.Post(StoragePath+RPCGetItem, h.getItem)
		r.Post(StoragePath+RPCRemoveItem, h.removeItem)
		r.Post(StoragePath+RPCClearItemWithPrefix, h.clearItemWithPrefix)
		r.Post(StoragePath+RPCGetPrefixedKeys, h.getPrefixedKeys)
		r.Post(StoragePath+RPCSetSynchronizeKeychain, h.setSynchronizeKeychain)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
