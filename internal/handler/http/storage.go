package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/MKhiriev/go-secure-storage/models"
)

func (h *Handler) setItem(w http.ResponseWriter, r *http.Request) {
	var request models.SetItemRequest
	if !h.decode(w, r, &request) {
		return
	}

	if err := h.items.SetItem(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	var request models.GetItemRequest
	if !h.decode(w, r, &request) {
		return
	}

	response, err := h.items.GetItem(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, response)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	var request models.RemoveItemRequest
	if !h.decode(w, r, &request) {
		return
	}

	response, err := h.items.RemoveItem(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, response)
}

func (h *Handler) clearItemWithPrefix(w http.ResponseWriter, r *http.Request) {
	var request models.ClearItemsRequest
	if !h.decode(w, r, &request) {
		return
	}

	if err := h.items.ClearItemsWithPrefix(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}

func (h *Handler) getPrefixedKeys(w http.ResponseWriter, r *http.Request) {
	var request models.PrefixedKeysRequest
	if !h.decode(w, r, &request) {
		return
	}

	response, err := h.items.GetPrefixedKeys(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if response.Keys == nil {
		response.Keys = []string{}
	}

	h.writeJSON(w, r, response)
}

func (h *Handler) setSynchronizeKeychain(w http.ResponseWriter, r *http.Request) {
	var request models.SynchronizeRequest
	if !h.decode(w, r, &request) {
		return
	}

	if err := h.items.SetSynchronizeKeychain(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, map[string]string{"status": "ok"})
}

// decode reads the JSON body into v. A body that is not valid JSON for the
// request type is answered with InvalidData and decode reports false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.decode").Msg("failed to decode request body")
		h.writeError(w, r, app.NewInvalidData(err))
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if _, err := utils.WriteJSON(w, v, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("failed to write response")
	}
}
